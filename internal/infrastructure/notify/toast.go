package notify

// Toast is a transient user-visible notification with a localized title and
// description. It is the only user-facing error channel of the service.
type Toast struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

type Variant string

const (
	VariantSuccess     Variant = "success"
	VariantDestructive Variant = "destructive"
)

// Event identifies one notifiable outcome. The catalog below maps every
// event to its Arabic and English wording.
type Event string

const (
	ProductsLoadFailed  Event = "products.load_failed"
	ProductAdded        Event = "products.added"
	ProductAddFailed    Event = "products.add_failed"
	ProductUpdated      Event = "products.updated"
	ProductUpdateFailed Event = "products.update_failed"
	ProductDeleted      Event = "products.deleted"
	ProductDeleteFailed Event = "products.delete_failed"

	ReviewsLoadFailed  Event = "reviews.load_failed"
	ReviewAdded        Event = "reviews.added"
	ReviewAddFailed    Event = "reviews.add_failed"
	ReviewDeleted      Event = "reviews.deleted"
	ReviewDeleteFailed Event = "reviews.delete_failed"

	MessagesLoadFailed    Event = "messages.load_failed"
	MessageSent           Event = "messages.sent"
	MessageSendFailed     Event = "messages.send_failed"
	MessageMarkReadFailed Event = "messages.mark_read_failed"
	MessageDeleted        Event = "messages.deleted"
	MessageDeleteFailed   Event = "messages.delete_failed"

	CommentsLoadFailed  Event = "comments.load_failed"
	CommentAdded        Event = "comments.added"
	CommentAddFailed    Event = "comments.add_failed"
	CommentDeleted      Event = "comments.deleted"
	CommentDeleteFailed Event = "comments.delete_failed"

	FAQsLoadFailed  Event = "faqs.load_failed"
	FAQAdded        Event = "faqs.added"
	FAQAddFailed    Event = "faqs.add_failed"
	FAQUpdated      Event = "faqs.updated"
	FAQUpdateFailed Event = "faqs.update_failed"
	FAQDeleted      Event = "faqs.deleted"
	FAQDeleteFailed Event = "faqs.delete_failed"

	GalleryLoadFailed       Event = "gallery.load_failed"
	GalleryItemAdded        Event = "gallery.added"
	GalleryItemAddFailed    Event = "gallery.add_failed"
	GalleryItemUpdated      Event = "gallery.updated"
	GalleryItemUpdateFailed Event = "gallery.update_failed"
	GalleryItemDeleted      Event = "gallery.deleted"
	GalleryItemDeleteFailed Event = "gallery.delete_failed"

	OffersLoadFailed  Event = "offers.load_failed"
	OfferAdded        Event = "offers.added"
	OfferAddFailed    Event = "offers.add_failed"
	OfferUpdated      Event = "offers.updated"
	OfferUpdateFailed Event = "offers.update_failed"
	OfferDeleted      Event = "offers.deleted"
	OfferDeleteFailed Event = "offers.delete_failed"

	TestimonialsLoadFailed   Event = "testimonials.load_failed"
	TestimonialSubmitted     Event = "testimonials.submitted"
	TestimonialSubmitFailed  Event = "testimonials.submit_failed"
	TestimonialApproved      Event = "testimonials.approved"
	TestimonialApproveFailed Event = "testimonials.approve_failed"
	TestimonialDeleted       Event = "testimonials.deleted"
	TestimonialDeleteFailed  Event = "testimonials.delete_failed"

	LoginSucceeded     Event = "auth.login_succeeded"
	LoginUnknownUser   Event = "auth.unknown_user"
	LoginWrongPassword Event = "auth.wrong_password"
	LoginFailed        Event = "auth.login_failed"
)

type catalogEntry struct {
	variant Variant
	ar      string
	en      string
}

var catalog = map[Event]catalogEntry{
	ProductsLoadFailed:  {VariantDestructive, "فشل في تحميل المنتجات", "Failed to load products"},
	ProductAdded:        {VariantSuccess, "تم إضافة المنتج بنجاح", "Product added successfully"},
	ProductAddFailed:    {VariantDestructive, "فشل في إضافة المنتج", "Failed to add product"},
	ProductUpdated:      {VariantSuccess, "تم تحديث المنتج بنجاح", "Product updated successfully"},
	ProductUpdateFailed: {VariantDestructive, "فشل في تحديث المنتج", "Failed to update product"},
	ProductDeleted:      {VariantSuccess, "تم حذف المنتج بنجاح", "Product deleted successfully"},
	ProductDeleteFailed: {VariantDestructive, "فشل في حذف المنتج", "Failed to delete product"},

	ReviewsLoadFailed:  {VariantDestructive, "فشل في تحميل التقييمات", "Failed to load reviews"},
	ReviewAdded:        {VariantSuccess, "تم إضافة التقييم بنجاح", "Review added successfully"},
	ReviewAddFailed:    {VariantDestructive, "فشل في إضافة التقييم", "Failed to add review"},
	ReviewDeleted:      {VariantSuccess, "تم حذف التقييم بنجاح", "Review deleted successfully"},
	ReviewDeleteFailed: {VariantDestructive, "فشل في حذف التقييم", "Failed to delete review"},

	MessagesLoadFailed:    {VariantDestructive, "فشل في تحميل الرسائل", "Failed to load messages"},
	MessageSent:           {VariantSuccess, "تم إرسال الرسالة بنجاح", "Message sent successfully"},
	MessageSendFailed:     {VariantDestructive, "فشل في إرسال الرسالة", "Failed to send message"},
	MessageMarkReadFailed: {VariantDestructive, "فشل في تحديث حالة الرسالة", "Failed to update message status"},
	MessageDeleted:        {VariantSuccess, "تم حذف الرسالة بنجاح", "Message deleted successfully"},
	MessageDeleteFailed:   {VariantDestructive, "فشل في حذف الرسالة", "Failed to delete message"},

	CommentsLoadFailed:  {VariantDestructive, "فشل في تحميل التعليقات", "Failed to load comments"},
	CommentAdded:        {VariantSuccess, "تم إضافة التعليق بنجاح", "Comment added successfully"},
	CommentAddFailed:    {VariantDestructive, "فشل في إضافة التعليق", "Failed to add comment"},
	CommentDeleted:      {VariantSuccess, "تم حذف التعليق بنجاح", "Comment deleted successfully"},
	CommentDeleteFailed: {VariantDestructive, "فشل في حذف التعليق", "Failed to delete comment"},

	FAQsLoadFailed:  {VariantDestructive, "فشل في تحميل الأسئلة الشائعة", "Failed to load FAQs"},
	FAQAdded:        {VariantSuccess, "تم إضافة السؤال بنجاح", "FAQ added successfully"},
	FAQAddFailed:    {VariantDestructive, "فشل في إضافة السؤال", "Failed to add FAQ"},
	FAQUpdated:      {VariantSuccess, "تم تحديث السؤال بنجاح", "FAQ updated successfully"},
	FAQUpdateFailed: {VariantDestructive, "فشل في تحديث السؤال", "Failed to update FAQ"},
	FAQDeleted:      {VariantSuccess, "تم حذف السؤال بنجاح", "FAQ deleted successfully"},
	FAQDeleteFailed: {VariantDestructive, "فشل في حذف السؤال", "Failed to delete FAQ"},

	GalleryLoadFailed:       {VariantDestructive, "فشل في تحميل معرض الصور", "Failed to load gallery"},
	GalleryItemAdded:        {VariantSuccess, "تم إضافة الصورة بنجاح", "Gallery item added successfully"},
	GalleryItemAddFailed:    {VariantDestructive, "فشل في إضافة الصورة", "Failed to add gallery item"},
	GalleryItemUpdated:      {VariantSuccess, "تم تحديث الصورة بنجاح", "Gallery item updated successfully"},
	GalleryItemUpdateFailed: {VariantDestructive, "فشل في تحديث الصورة", "Failed to update gallery item"},
	GalleryItemDeleted:      {VariantSuccess, "تم حذف الصورة بنجاح", "Gallery item deleted successfully"},
	GalleryItemDeleteFailed: {VariantDestructive, "فشل في حذف الصورة", "Failed to delete gallery item"},

	OffersLoadFailed:  {VariantDestructive, "فشل في تحميل العروض", "Failed to load offers"},
	OfferAdded:        {VariantSuccess, "تم إضافة العرض بنجاح", "Offer added successfully"},
	OfferAddFailed:    {VariantDestructive, "فشل في إضافة العرض", "Failed to add offer"},
	OfferUpdated:      {VariantSuccess, "تم تحديث العرض بنجاح", "Offer updated successfully"},
	OfferUpdateFailed: {VariantDestructive, "فشل في تحديث العرض", "Failed to update offer"},
	OfferDeleted:      {VariantSuccess, "تم حذف العرض بنجاح", "Offer deleted successfully"},
	OfferDeleteFailed: {VariantDestructive, "فشل في حذف العرض", "Failed to delete offer"},

	TestimonialsLoadFailed:   {VariantDestructive, "فشل في تحميل الشهادات", "Failed to load testimonials"},
	TestimonialSubmitted:     {VariantSuccess, "تم إرسال الشهادة وستظهر بعد المراجعة", "Testimonial submitted, it will appear after review"},
	TestimonialSubmitFailed:  {VariantDestructive, "فشل في إرسال الشهادة", "Failed to submit testimonial"},
	TestimonialApproved:      {VariantSuccess, "تم قبول الشهادة", "Testimonial approved"},
	TestimonialApproveFailed: {VariantDestructive, "فشل في قبول الشهادة", "Failed to approve testimonial"},
	TestimonialDeleted:       {VariantSuccess, "تم حذف الشهادة بنجاح", "Testimonial deleted successfully"},
	TestimonialDeleteFailed:  {VariantDestructive, "فشل في حذف الشهادة", "Failed to delete testimonial"},

	LoginSucceeded:     {VariantSuccess, "تم تسجيل الدخول بنجاح", "Logged in successfully"},
	LoginUnknownUser:   {VariantDestructive, "اسم المستخدم غير صحيح", "Unknown username"},
	LoginWrongPassword: {VariantDestructive, "كلمة المرور غير صحيحة", "Wrong password"},
	LoginFailed:        {VariantDestructive, "حدث خطأ أثناء تسجيل الدخول", "An error occurred while logging in"},
}

// Localize resolves an event to its toast in the given language ("ar"
// or "en"). Unknown events fall back to a generic error toast so a missing
// catalog entry never silences a failure.
func Localize(event Event, lang string) Toast {
	entry, ok := catalog[event]
	if !ok {
		if lang == "en" {
			return Toast{Title: "Error", Description: "An unexpected error occurred", Variant: VariantDestructive}
		}
		return Toast{Title: "خطأ", Description: "حدث خطأ غير متوقع", Variant: VariantDestructive}
	}

	toast := Toast{Variant: entry.variant}
	if lang == "en" {
		toast.Description = entry.en
		if entry.variant == VariantSuccess {
			toast.Title = "Success"
		} else {
			toast.Title = "Error"
		}
		return toast
	}

	toast.Description = entry.ar
	if entry.variant == VariantSuccess {
		toast.Title = "تم بنجاح"
	} else {
		toast.Title = "خطأ"
	}
	return toast
}
