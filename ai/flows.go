package ai

import (
	"fmt"
	"strings"
)

// GenerateMarketingCopy returns ready-to-post copy variants for a content
// title and brief description. Template-based; no model call involved.
func GenerateMarketingCopy(title, description string) []string {
	return []string{
		fmt.Sprintf("¡Descubre %s! %s", title, description),
		fmt.Sprintf("No te pierdas: %s. %s", title, description),
		fmt.Sprintf("Nuevo: %s. %s", title, description),
	}
}

// SuggestContentIdeas proposes content ideas from the optional topic,
// trending topics, seasonal events and keyword hints. Every input falls back
// to a generic default so the flow always yields five ideas.
func SuggestContentIdeas(topic, trendingTopics, seasonalEvents, keyword string) []string {
	return []string{
		fmt.Sprintf("Ideas sobre %s", orDefault(topic, "marketing digital")),
		fmt.Sprintf("Tendencias actuales: %s", orDefault(trendingTopics, "redes sociales")),
		fmt.Sprintf("Eventos de temporada: %s", orDefault(seasonalEvents, "festividades")),
		fmt.Sprintf("Contenido sobre %s", orDefault(keyword, "estrategias")),
		fmt.Sprintf("Tips y consejos para %s", orDefault(topic, "tu audiencia")),
	}
}

// HashtagSet groups generated hashtags by reach: broad tags for general SEO,
// long-tail tags for niche targeting, and geo-targeted tags when a location
// was given.
type HashtagSet struct {
	General []string `json:"general"`
	Niche   []string `json:"niche"`
	Local   []string `json:"local,omitempty"`
}

// GenerateHashtags builds hashtags from the topic words, optional
// comma-separated keywords and an optional location.
func GenerateHashtags(topic, keywords, location string) HashtagSet {
	topicWords := strings.Fields(strings.ToLower(strings.TrimSpace(topic)))
	if len(topicWords) == 0 {
		topicWords = []string{"contenido"}
	}
	joined := strings.Join(topicWords, "")
	first := topicWords[0]

	set := HashtagSet{
		General: []string{
			"#" + joined,
			"#" + first,
			"#marketing",
			"#contenido",
			"#digital",
		},
		Niche: []string{
			"#" + joined + "Tips",
			"#Como" + first,
		},
	}

	for _, k := range strings.Split(keywords, ",") {
		k = strings.TrimSpace(strings.ToLower(k))
		if k == "" {
			continue
		}
		set.Niche = append(set.Niche, "#"+strings.ReplaceAll(k, " ", ""))
	}
	set.Niche = append(set.Niche, "#"+first+"Estrategia", "#"+first+"Experto")

	location = strings.TrimSpace(location)
	if location != "" {
		compact := strings.ReplaceAll(location, " ", "")
		set.Local = []string{
			"#" + compact,
			"#" + first + compact,
			"#" + strings.Fields(location)[0],
		}
	}

	return set
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
