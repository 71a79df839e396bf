package model

import (
	"time"

	"github.com/google/uuid"
)

// GeneralView is the reserved name of the default collection. Campaign names
// may never collide with it.
const GeneralView = "general"

// ContentCategory is one of the fixed category tags shown in the calendar.
type ContentCategory string

const (
	CategoryEducational   ContentCategory = "📚 Educativo"
	CategoryInspirational ContentCategory = "💫 Inspiracional"
	CategoryPromotional   ContentCategory = "📢 Promocional"
	CategoryTestimonial   ContentCategory = "👥 UGC / Testimonios"
	CategoryEntertainment ContentCategory = "🎬 Entretenimiento"
	CategoryCommunity     ContentCategory = "🤝 Comunidad"
)

// ContentCategories lists every valid category in display order.
var ContentCategories = []ContentCategory{
	CategoryEducational,
	CategoryInspirational,
	CategoryPromotional,
	CategoryTestimonial,
	CategoryEntertainment,
	CategoryCommunity,
}

// ContentStatus tracks production progress of a content item.
type ContentStatus string

const (
	StatusTodo       ContentStatus = "Por Hacer"
	StatusInProgress ContentStatus = "En Proceso"
	StatusDone       ContentStatus = "Finalizado"
)

// ContentStatuses lists every valid status in progress order.
var ContentStatuses = []ContentStatus{StatusTodo, StatusInProgress, StatusDone}

// ContentItem is a single scheduled piece of content. Identity is ID; every
// other field is mutable through explicit update operations.
type ContentItem struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Date        time.Time       `json:"date"`
	Category    ContentCategory `json:"category"`
	Description string          `json:"description"`
	Status      ContentStatus   `json:"status"`
}

// AppState is the full calendar state: the general collection, the named
// campaigns, and which view is currently active.
type AppState struct {
	General    []ContentItem            `json:"general"`
	Campaigns  map[string][]ContentItem `json:"campaigns"`
	ActiveView string                   `json:"activeView"`
}

// NewState returns an initialized empty state pointing at the general view.
func NewState() AppState {
	return AppState{
		General:    []ContentItem{},
		Campaigns:  map[string][]ContentItem{},
		ActiveView: GeneralView,
	}
}

// NewID returns a fresh opaque item identifier.
func NewID() string {
	return uuid.NewString()
}

// ValidCategory reports whether c is one of the closed category set.
func ValidCategory(c ContentCategory) bool {
	for _, known := range ContentCategories {
		if known == c {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is one of the closed status set.
func ValidStatus(s ContentStatus) bool {
	for _, known := range ContentStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// CopyItems returns an independent copy of a collection.
func CopyItems(items []ContentItem) []ContentItem {
	out := make([]ContentItem, len(items))
	copy(out, items)
	return out
}

// CopyState returns a deep copy of state. Collections are copied so the
// result can be mutated without touching the source.
func CopyState(state AppState) AppState {
	out := state
	out.General = CopyItems(state.General)
	out.Campaigns = make(map[string][]ContentItem, len(state.Campaigns))
	for name, items := range state.Campaigns {
		out.Campaigns[name] = CopyItems(items)
	}
	return out
}

// Date builds a date-only value at midnight UTC, the canonical instant for
// calendar entries.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// InitialContent seeds a first-run calendar with sample entries for the
// current year, so the dashboard is not empty before the user adds anything.
func InitialContent() []ContentItem {
	year := time.Now().Year()
	return []ContentItem{
		{
			ID:          NewID(),
			Title:       "Lanzamiento Nueva Colección Otoño",
			Date:        Date(year, time.September, 15),
			Category:    CategoryPromotional,
			Description: "¡Prepárate! La nueva colección de otoño llega con estilos increíbles y colores de temporada.",
			Status:      StatusTodo,
		},
		{
			ID:          NewID(),
			Title:       "5 Tips para Mejorar tu SEO",
			Date:        Date(year, time.September, 20),
			Category:    CategoryEducational,
			Description: "Descubre 5 estrategias sencillas para optimizar tu sitio web y atraer más tráfico orgánico.",
			Status:      StatusInProgress,
		},
		{
			ID:          NewID(),
			Title:       "Frase Inspiradora de la Semana",
			Date:        Date(year, time.September, 23),
			Category:    CategoryInspirational,
			Description: "\"El único modo de hacer un gran trabajo es amar lo que haces.\" - Steve Jobs",
			Status:      StatusDone,
		},
		{
			ID:          NewID(),
			Title:       "Live Q&A con nuestro CEO",
			Date:        Date(year, time.October, 2),
			Category:    CategoryCommunity,
			Description: "Únete a nuestra sesión en vivo y pregunta todo lo que quieras saber sobre el futuro de la marca.",
			Status:      StatusTodo,
		},
		{
			ID:          NewID(),
			Title:       "Detrás de Cámaras: Sesión de Fotos",
			Date:        Date(year, time.October, 10),
			Category:    CategoryEntertainment,
			Description: "Un vistazo exclusivo a cómo creamos la magia para nuestra próxima campaña publicitaria.",
			Status:      StatusTodo,
		},
		{
			ID:          NewID(),
			Title:       "Testimonio de Cliente: Ana G.",
			Date:        Date(year, time.October, 18),
			Category:    CategoryTestimonial,
			Description: "\"¡Estoy enamorada de mi nuevo producto! La calidad superó mis expectativas.\" - Ana G. comparte su experiencia.",
			Status:      StatusDone,
		},
	}
}
