package book

// Book is one tracked entry in the reading list.
type Book struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Author    string `json:"author" yaml:"author"`
	Genre     string `json:"genre" yaml:"genre"`
	Status    Status `json:"status" yaml:"status"`
	ISBN      string `json:"isbn,omitempty" yaml:"isbn,omitempty"`
	Rating    int    `json:"rating" yaml:"rating"`
	CreatedAt int64  `json:"createdAt" yaml:"created_at"`
}

// Status is the reading state of a book.
type Status string

const (
	StatusToRead    Status = "to-read"
	StatusReading   Status = "reading"
	StatusCompleted Status = "completed"
)

// Statuses lists all states in cycle order.
var Statuses = []Status{StatusToRead, StatusReading, StatusCompleted}

// Valid reports whether s is one of the three reading states.
func (s Status) Valid() bool {
	return s == StatusToRead || s == StatusReading || s == StatusCompleted
}

// Label returns the human-readable form of a status.
func (s Status) Label() string {
	switch s {
	case StatusToRead:
		return "To Read"
	case StatusReading:
		return "Reading"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Next returns the status after s in cycle order.
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s {
			return Statuses[(i+1)%len(Statuses)]
		}
	}
	return StatusToRead
}

// Genres is the fixed set of genres a book can be filed under.
var Genres = []string{
	"Fiction",
	"Nonfiction",
	"Fantasy",
	"Sci-Fi",
	"Mystery",
	"Biography",
	"History",
	"Poetry",
}

// ValidGenre reports whether g is one of the known genres.
func ValidGenre(g string) bool {
	for _, known := range Genres {
		if known == g {
			return true
		}
	}
	return false
}

// MaxRating is the top of the star scale. Ratings run 0..MaxRating.
const MaxRating = 5
