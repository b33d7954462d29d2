package usecase

import (
	"time"

	"souqtech/internal/domain/entity"
)

// Legacy views expose every remote-shaped record augmented with the field
// names older UI components still use (camelCase aliases, merged text
// fields). The mapping is pure and derived on every read; the aliases are
// never a source of truth.

type ProductView struct {
	entity.Product
	LegacyNameEn        string  `json:"nameEn,omitempty"`
	LegacyDescriptionEn string  `json:"descriptionEn,omitempty"`
	LegacyOriginalPrice float64 `json:"originalPrice,omitempty"`
	LegacyImage         string  `json:"image,omitempty"`
	Badge               string  `json:"badge,omitempty"`
	InStock             bool    `json:"inStock"`
}

func NewProductView(p *entity.Product) ProductView {
	badge := ""
	switch {
	case p.IsNew:
		badge = "new"
	case p.IsBestseller:
		badge = "bestseller"
	case p.IsOrganic:
		badge = "organic"
	}

	return ProductView{
		Product:             *p,
		LegacyNameEn:        p.NameEn,
		LegacyDescriptionEn: p.DescriptionEn,
		LegacyOriginalPrice: p.OriginalPrice,
		LegacyImage:         p.ImageURL,
		Badge:               badge,
		InStock:             true,
	}
}

type ReviewView struct {
	entity.Review
	LegacyName      string    `json:"name"`
	LegacyComment   string    `json:"comment"`
	LegacyProductID string    `json:"productId"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewReviewView(r *entity.Review) ReviewView {
	return ReviewView{
		Review:          *r,
		LegacyName:      r.CustomerName,
		LegacyComment:   r.ReviewText,
		LegacyProductID: r.ProductID,
		Timestamp:       r.CreatedAt,
	}
}

type MessageView struct {
	entity.Message
	LegacyProductID string    `json:"productId,omitempty"`
	LegacyRead      bool      `json:"read"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewMessageView(m *entity.Message) MessageView {
	return MessageView{
		Message:         *m,
		LegacyProductID: m.ProductID,
		LegacyRead:      m.IsRead,
		Timestamp:       m.CreatedAt,
	}
}

type CommentView struct {
	entity.Comment
	LegacyName      string    `json:"name"`
	LegacyComment   string    `json:"comment"`
	LegacyProductID string    `json:"productId"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewCommentView(c *entity.Comment) CommentView {
	return CommentView{
		Comment:         *c,
		LegacyName:      c.CustomerName,
		LegacyComment:   c.CommentText,
		LegacyProductID: c.ProductID,
		Timestamp:       c.CreatedAt,
	}
}

type FAQView struct {
	entity.FAQ
	LegacyQuestionEn string `json:"questionEn,omitempty"`
	LegacyAnswerEn   string `json:"answerEn,omitempty"`
	LegacyOrder      int    `json:"order"`
}

func NewFAQView(f *entity.FAQ) FAQView {
	return FAQView{
		FAQ:              *f,
		LegacyQuestionEn: f.QuestionEn,
		LegacyAnswerEn:   f.AnswerEn,
		LegacyOrder:      f.OrderIndex,
	}
}

type GalleryItemView struct {
	entity.GalleryItem
	LegacyTitleEn       string `json:"titleEn,omitempty"`
	LegacyDescriptionEn string `json:"descriptionEn,omitempty"`
	LegacyImage         string `json:"image"`
}

func NewGalleryItemView(g *entity.GalleryItem) GalleryItemView {
	return GalleryItemView{
		GalleryItem:         *g,
		LegacyTitleEn:       g.TitleEn,
		LegacyDescriptionEn: g.DescriptionEn,
		LegacyImage:         g.ImageURL,
	}
}

type OfferView struct {
	entity.Offer
	LegacyTitleEn       string `json:"titleEn,omitempty"`
	LegacyDescriptionEn string `json:"descriptionEn,omitempty"`
}

func NewOfferView(o *entity.Offer) OfferView {
	return OfferView{
		Offer:               *o,
		LegacyTitleEn:       o.TitleEn,
		LegacyDescriptionEn: o.DescriptionEn,
	}
}
