package extract

import (
	"reflect"
	"testing"

	"github.com/pdiddy/pubmed-papers/internal/classify"
	"github.com/pdiddy/pubmed-papers/internal/entrez"
)

func citation(title string, date entrez.PubDate, authors ...entrez.Author) *entrez.Citation {
	return &entrez.Citation{
		Article: entrez.Article{
			Title:   title,
			PubDate: date,
			Authors: authors,
		},
	}
}

func TestExtractNonAcademicAuthor(t *testing.T) {
	cit := citation("A Paper", entrez.PubDate{Year: "2023", Month: "Apr", Day: "14"},
		entrez.Author{
			ForeName:     "Jane",
			LastName:     "Doe",
			Affiliations: []string{"Acme Pharma Inc, Cambridge"},
		},
	)

	s := Extract(cit, "12345", classify.New())

	if s.PMID != "12345" {
		t.Errorf("PMID = %q, want %q", s.PMID, "12345")
	}
	if s.Title != "A Paper" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.PubDate != "2023-Apr-14" {
		t.Errorf("PubDate = %q, want %q", s.PubDate, "2023-Apr-14")
	}
	if !reflect.DeepEqual(s.NonAcademicAuthors, []string{"Jane Doe"}) {
		t.Errorf("NonAcademicAuthors = %v, want [Jane Doe]", s.NonAcademicAuthors)
	}
	if !reflect.DeepEqual(s.CompanyAffiliations, []string{"Acme Pharma Inc, Cambridge"}) {
		t.Errorf("CompanyAffiliations = %v", s.CompanyAffiliations)
	}
}

func TestExtractAcademicAuthorContributesNothing(t *testing.T) {
	cit := citation("A Paper", entrez.PubDate{Year: "2023"},
		entrez.Author{
			ForeName:     "Alan",
			LastName:     "Turing",
			Affiliations: []string{"Dept of Biology, University of X"},
		},
	)

	s := Extract(cit, "12345", classify.New())

	if s.HasNonAcademicAuthor() {
		t.Errorf("academic-only author should contribute nothing, got %v", s.NonAcademicAuthors)
	}
	if len(s.CompanyAffiliations) != 0 {
		t.Errorf("CompanyAffiliations = %v, want empty", s.CompanyAffiliations)
	}
}

func TestExtractMissingDateComponents(t *testing.T) {
	tests := []struct {
		name string
		date entrez.PubDate
		want string
	}{
		{"full", entrez.PubDate{Year: "2023", Month: "Apr", Day: "14"}, "2023-Apr-14"},
		{"no day", entrez.PubDate{Year: "2023", Month: "Apr"}, "2023-Apr-"},
		{"year only", entrez.PubDate{Year: "2023"}, "2023--"},
		{"empty", entrez.PubDate{}, "--"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Extract(citation("", tt.date), "1", classify.New())
			if s.PubDate != tt.want {
				t.Errorf("PubDate = %q, want %q", s.PubDate, tt.want)
			}
		})
	}
}

func TestExtractDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		author entrez.Author
		want   string
	}{
		{"both parts", entrez.Author{ForeName: "Jane", LastName: "Doe"}, "Jane Doe"},
		{"last name only", entrez.Author{LastName: "Doe"}, "Doe"},
		{"forename only", entrez.Author{ForeName: "Jane"}, "Jane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.author.Affiliations = []string{"Acme Pharma Inc"}
			s := Extract(citation("", entrez.PubDate{}, tt.author), "1", classify.New())
			if !reflect.DeepEqual(s.NonAcademicAuthors, []string{tt.want}) {
				t.Errorf("NonAcademicAuthors = %v, want [%s]", s.NonAcademicAuthors, tt.want)
			}
		})
	}
}

func TestExtractEmailFromAffiliation(t *testing.T) {
	cit := citation("", entrez.PubDate{},
		entrez.Author{
			ForeName:     "Jane",
			LastName:     "Doe",
			Affiliations: []string{"Acme Inc, contact: j.doe@acme.com"},
		},
	)

	s := Extract(cit, "1", classify.New())
	if s.CorrespondingEmail != "j.doe@acme.com" {
		t.Errorf("CorrespondingEmail = %q, want %q", s.CorrespondingEmail, "j.doe@acme.com")
	}
}

// TestCorrespondingEmailFirstMatchWins pins the documented choice: the first
// email found in affiliation scanning order is kept, later matches never
// overwrite it.
func TestCorrespondingEmailFirstMatchWins(t *testing.T) {
	cit := citation("", entrez.PubDate{},
		entrez.Author{
			ForeName:     "Jane",
			LastName:     "Doe",
			Affiliations: []string{"Acme Inc, j.doe@acme.com"},
		},
		entrez.Author{
			ForeName:     "John",
			LastName:     "Smith",
			Affiliations: []string{"Beta Biotech Ltd, j.smith@beta.io"},
		},
	)

	s := Extract(cit, "1", classify.New())
	if s.CorrespondingEmail != "j.doe@acme.com" {
		t.Errorf("CorrespondingEmail = %q, want first match %q", s.CorrespondingEmail, "j.doe@acme.com")
	}
}

func TestExtractDeduplicatesSharedAffiliation(t *testing.T) {
	shared := "Acme Pharma Inc, Cambridge"
	cit := citation("", entrez.PubDate{},
		entrez.Author{ForeName: "Jane", LastName: "Doe", Affiliations: []string{shared}},
		entrez.Author{ForeName: "John", LastName: "Smith", Affiliations: []string{shared}},
	)

	s := Extract(cit, "1", classify.New())
	if !reflect.DeepEqual(s.CompanyAffiliations, []string{shared}) {
		t.Errorf("CompanyAffiliations = %v, want exactly one entry", s.CompanyAffiliations)
	}
	if len(s.NonAcademicAuthors) != 2 {
		t.Errorf("NonAcademicAuthors = %v, want 2 entries", s.NonAcademicAuthors)
	}
}

func TestExtractIdempotent(t *testing.T) {
	cit := citation("A Paper", entrez.PubDate{Year: "2023"},
		entrez.Author{ForeName: "Jane", LastName: "Doe", Affiliations: []string{"Acme Pharma Inc, j@acme.com"}},
		entrez.Author{ForeName: "Ada", LastName: "King", Affiliations: []string{"Beta Biotech Ltd"}},
	)

	cls := classify.New()
	first := Extract(cit, "1", cls)
	second := Extract(cit, "1", cls)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtractEmptyCitation(t *testing.T) {
	s := Extract(&entrez.Citation{}, "1", classify.New())
	if s.Title != "" || s.PubDate != "--" || s.HasNonAcademicAuthor() || s.CorrespondingEmail != "" {
		t.Errorf("empty citation should yield empty summary, got %+v", s)
	}
}
