package domain

import "strings"

// FeatureTag - перечислимый признак места (удобства, покрытие, доступ).
type FeatureTag string

const (
	TagWaterSource  FeatureTag = "water_source"
	TagMobileSignal FeatureTag = "mobile_signal"
	TagCampfireSite FeatureTag = "campfire_site"
	TagToilet       FeatureTag = "toilet"
	TagShoreline    FeatureTag = "shoreline"
	TagFishingSpot  FeatureTag = "fishing_spot"
	TagBikeAccess   FeatureTag = "bike_access"
	TagPaidEntry    FeatureTag = "paid_entry"
	TagSand         FeatureTag = "sand"
	TagStone        FeatureTag = "stone"
	TagGround       FeatureTag = "ground"
)

// FeatureTags - все допустимые значения в каноническом порядке.
var FeatureTags = []FeatureTag{
	TagWaterSource,
	TagMobileSignal,
	TagCampfireSite,
	TagToilet,
	TagShoreline,
	TagFishingSpot,
	TagBikeAccess,
	TagPaidEntry,
	TagSand,
	TagStone,
	TagGround,
}

// ParseFeatureTag разбирает имя тега без учёта регистра.
func ParseFeatureTag(s string) (FeatureTag, bool) {
	tag := FeatureTag(strings.ToLower(strings.TrimSpace(s)))
	if tag.Valid() {
		return tag, true
	}
	return "", false
}

// Valid проверяет, что значение входит в перечисление.
func (t FeatureTag) Valid() bool {
	for _, known := range FeatureTags {
		if t == known {
			return true
		}
	}
	return false
}
