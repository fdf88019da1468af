package model

type Film struct {
	DTO
	Name           string     `json:"name"`
	Actor          string     `json:"actor"`
	Director       string     `json:"director"`
	Producer       string     `json:"producer"`
	Duration       int        `json:"duration"`
	Description    string     `json:"description"`
	Year           int        `json:"year"`
	Country        string     `json:"country"`
	LimitAge       int        `json:"limitAge"`
	Trailer        string     `json:"trailer"`
	StartDate      CustomDate `json:"startDate"`
	EndDate        CustomDate `json:"endDate"`
	Category       string     `json:"category"`
	ListIdCategory []int      `json:"listIdCategory"`
	Image          []string   `json:"image"`
	Poster         string     `json:"poster"`
	Enable         bool       `json:"enable"`
}

type FileImage struct {
	NameFile string `json:"nameFile"`
	TypeFile string `json:"typeFile"`
}

const FileTypeImage = "Image"

type FilmInput struct {
	ID             int         `json:"id,omitempty" form:"id"`
	Name           string      `json:"name" form:"name" validate:"notblank"`
	Actor          string      `json:"actor" form:"actor" validate:"notblank"`
	Director       string      `json:"director" form:"director" validate:"notblank"`
	Producer       string      `json:"producer" form:"producer" validate:"notblank"`
	Duration       int         `json:"duration" form:"duration" validate:"gt=0"`
	Description    string      `json:"description" form:"description" validate:"notblank"`
	Year           int         `json:"year" form:"year" validate:"gt=0"`
	Country        string      `json:"country" form:"country" validate:"notblank"`
	LimitAge       int         `json:"limitAge" form:"limitAge" validate:"gt=0"`
	Trailer        string      `json:"trailer" form:"trailer" validate:"notblank"`
	StartDate      string      `json:"startDate" form:"startDate"`
	EndDate        string      `json:"endDate" form:"endDate"`
	ListIdCategory []int       `json:"listIdCategory" form:"listIdCategory"`
	FileImages     []FileImage `json:"fileImages" form:"-"`
	Poster         string      `json:"poster" form:"poster"`
	// ReplaceImages is set on edit when new images should replace the gallery.
	ReplaceImages bool `json:"-" form:"replaceImages"`
}

type Category struct {
	DTO
	Name string `json:"name"`
}

type CategoryInput struct {
	ID   int    `json:"id,omitempty" form:"id"`
	Name string `json:"name" form:"name" validate:"notblank"`
}

type Poster struct {
	DTO
	PathImage string `json:"pathImage"`
	LinkUrl   string `json:"linkUrl"`
}

type PosterInput struct {
	ID        int    `json:"id,omitempty" form:"id"`
	PathImage string `json:"pathImage" form:"-"`
	LinkUrl   string `json:"linkUrl" form:"linkUrl"`
}
