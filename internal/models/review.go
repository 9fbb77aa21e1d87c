package models

import "time"

// Review отзыв пользователя на произведение с оценкой от 1 до 10.
// На пару (автор, произведение) может существовать не более одного отзыва.
// PubDate выставляется один раз при создании и не изменяется.
type Review struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"` // username автора
	AuthorUID string    `json:"-"`
	TitleID   int       `json:"title"`
	Text      string    `json:"text"`
	Score     int       `json:"score"`
	PubDate   time.Time `json:"pub_date"`
}

// Comment комментарий к отзыву. Удаляется каскадно вместе с отзывом.
type Comment struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"` // username автора
	AuthorUID string    `json:"-"`
	ReviewID  int       `json:"-"`
	Text      string    `json:"text"`
	PubDate   time.Time `json:"pub_date"`
}

// DummyReview входные данные для создания отзыва. Автор не принимается
// от клиента, он подставляется сервером из аутентифицированного пользователя.
type DummyReview struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"required,gte=1,lte=10"`
}

// DummyReviewPatch частичное обновление отзыва: текст и оценка.
type DummyReviewPatch struct {
	Text  *string `json:"text"`
	Score *int    `json:"score" validate:"omitempty,gte=1,lte=10"`
}

// DummyComment входные данные для создания комментария.
type DummyComment struct {
	Text string `json:"text" validate:"required"`
}

// DummyCommentPatch частичное обновление комментария.
type DummyCommentPatch struct {
	Text *string `json:"text"`
}
