// Package portfolio holds the content document served by the API: the
// profile singleton, the five entity collections and the admin credential
// record, all persisted together as one document.
package portfolio

import "context"

type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Email    string `json:"email"`
	Website  string `json:"website"`
}

type Profile struct {
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Bio         string      `json:"bio"`
	Photo       string      `json:"photo"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

type Experience struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type Project struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Image            string   `json:"image"`
	Tags             []string `json:"tags"`
	LiveURL          string   `json:"liveUrl"`
	GitHubURL        string   `json:"githubUrl"`
	Featured         bool     `json:"featured"`
}

type Education struct {
	ID          int    `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

type Certification struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

type SkillGroup struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// AdminCredentials is the single admin account. Only a bcrypt hash of the
// password is ever stored.
type AdminCredentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// Document is the whole store content. Every write replaces it wholesale.
type Document struct {
	Profile          Profile          `json:"profile"`
	Experiences      []Experience     `json:"experiences"`
	Projects         []Project        `json:"projects"`
	Education        []Education      `json:"education"`
	Certifications   []Certification  `json:"certifications"`
	SkillGroups      []SkillGroup     `json:"skillGroups"`
	AdminCredentials AdminCredentials `json:"adminCredentials"`
}

// Store is the persistence contract. Read returns the full document, seeding
// the backing storage when it does not exist yet. Update runs mutate against
// the current document under a single-writer lock and persists the result;
// when mutate returns an error nothing is written.
type Store interface {
	Read(ctx context.Context) (*Document, error)
	Update(ctx context.Context, mutate func(*Document) error) error
}
