package models

// Project is a portfolio entry. Favorite and Image are server-controlled at
// creation; Image is only set through the image upload route.
type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Languages   []string `json:"languages"`
	Github      string   `json:"github"`
	Favorite    bool     `json:"favorite"`
	Image       *string  `json:"image"`
}

// NewProject is the client-supplied part of a project on create.
type NewProject struct {
	Name        string   `json:"name" validate:"required,max=255"`
	URL         string   `json:"url" validate:"omitempty,url"`
	Description string   `json:"description" validate:"max=5000"`
	Languages   []string `json:"languages" validate:"dive,required,max=64"`
	Github      string   `json:"github" validate:"omitempty,url"`
}

// ProjectPatch carries a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=255"`
	URL         *string   `json:"url" validate:"omitempty,url"`
	Description *string   `json:"description" validate:"omitempty,max=5000"`
	Languages   *[]string `json:"languages" validate:"omitempty,dive,required,max=64"`
	Github      *string   `json:"github" validate:"omitempty,url"`
	Favorite    *bool     `json:"favorite"`
}

// Fields returns the set fields keyed by their document name.
func (p ProjectPatch) Fields() map[string]any {
	out := make(map[string]any)
	if p.Name != nil {
		out["name"] = *p.Name
	}
	if p.URL != nil {
		out["url"] = *p.URL
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.Languages != nil {
		langs := *p.Languages
		if langs == nil {
			langs = []string{}
		}
		out["languages"] = langs
	}
	if p.Github != nil {
		out["github"] = *p.Github
	}
	if p.Favorite != nil {
		out["favorite"] = *p.Favorite
	}
	return out
}
