package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizeArabic(t *testing.T) {
	toast := Localize(ProductAdded, "ar")

	assert.Equal(t, "تم بنجاح", toast.Title)
	assert.Equal(t, "تم إضافة المنتج بنجاح", toast.Description)
	assert.Equal(t, VariantSuccess, toast.Variant)
}

func TestLocalizeEnglish(t *testing.T) {
	toast := Localize(ProductDeleteFailed, "en")

	assert.Equal(t, "Error", toast.Title)
	assert.Equal(t, "Failed to delete product", toast.Description)
	assert.Equal(t, VariantDestructive, toast.Variant)
}

func TestLocalizeUnknownEventFallsBack(t *testing.T) {
	toast := Localize(Event("no.such.event"), "ar")

	assert.Equal(t, "خطأ", toast.Title)
	assert.Equal(t, VariantDestructive, toast.Variant)

	toast = Localize(Event("no.such.event"), "en")
	assert.Equal(t, "Error", toast.Title)
}

func TestEveryEventHasBothLanguages(t *testing.T) {
	for event, entry := range catalog {
		assert.NotEmpty(t, entry.ar, "missing Arabic wording for %s", event)
		assert.NotEmpty(t, entry.en, "missing English wording for %s", event)
	}
}

func TestLoginToastWording(t *testing.T) {
	assert.Equal(t, "اسم المستخدم غير صحيح", Localize(LoginUnknownUser, "ar").Description)
	assert.Equal(t, "كلمة المرور غير صحيحة", Localize(LoginWrongPassword, "ar").Description)
	assert.Equal(t, "تم إرسال الشهادة وستظهر بعد المراجعة", Localize(TestimonialSubmitted, "ar").Description)
}
