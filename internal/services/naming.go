package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// NormalizeName trims surrounding whitespace and title-cases every
// whitespace-delimited word: "  extra  CHEESE " becomes "Extra  Cheese".
// Normalizing an already normalized name returns it unchanged.
func NormalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return trimmed
	}

	runes := []rune(cases.Lower(language.Und).String(trimmed))
	wordStart := true
	for i, r := range runes {
		if unicode.IsSpace(r) {
			wordStart = true
			continue
		}
		if wordStart {
			runes[i] = unicode.ToTitle(r)
			wordStart = false
		}
	}
	return string(runes)
}

// nameTaken reports whether a row of model's table already uses the normalized name.
// excludeID, when set, skips that row so an entity can keep its own name.
func nameTaken(tx *gorm.DB, model interface{}, name string, excludeID *uint) (bool, error) {
	query := tx.Model(model).Where("LOWER(name) = LOWER(?)", NormalizeName(name))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// uniqueIDs drops duplicate ids, keeping first-seen order
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
