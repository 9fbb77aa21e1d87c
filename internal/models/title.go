package models

// Category категория произведения (фильм, книга и т.п.).
// Slug уникален и служит внешним идентификатором вместо числового id.
type Category struct {
	ID   int    `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Genre жанр произведения. Slug уникален и служит внешним идентификатором.
type Genre struct {
	ID   int    `json:"-"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Title произведение, к которому пишут отзывы.
//
// Rating — производное значение, среднее арифметическое оценок отзывов,
// вычисляется при чтении и нигде не хранится. nil означает отсутствие отзывов,
// в ответе это null, а не 0.
type Title struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Year        int       `json:"year"`
	Description string    `json:"description"`
	Category    *Category `json:"category"`
	Genre       []Genre   `json:"genre"`
	Rating      *float64  `json:"rating"`
}

// DummyCategory входные данные для создания категории.
type DummyCategory struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug" validate:"required,max=50"`
}

// DummyGenre входные данные для создания жанра.
type DummyGenre struct {
	Name string `json:"name" validate:"required,max=64"`
	Slug string `json:"slug" validate:"required,max=50"`
}

// DummyTitle входные данные для создания произведения.
// Категория и жанры передаются slug-ами уже существующих записей.
type DummyTitle struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Year        int      `json:"year" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Genre       []string `json:"genre" validate:"required,min=1"`
}

// DummyTitlePatch частичное обновление произведения.
type DummyTitlePatch struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Year        *int     `json:"year"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

// TitleFilter параметры фильтрации списка произведений.
type TitleFilter struct {
	Category string // slug категории
	Genre    string // slug жанра
	Name     string // подстрока названия
	Year     int    // точный год, 0 — не фильтровать
}
