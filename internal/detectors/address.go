package detectors

import (
	"regexp"

	"github.com/piigate/piigate/internal/types"
)

const addressConfidence = 0.70

var (
	// Province or metro-city prefix followed by Hangul/digit/hyphen text that
	// ends in an administrative unit suffix.
	reAddress = regexp.MustCompile(`(?:서울|부산|대구|인천|광주|대전|울산|세종|경기|강원|충북|충남|전북|전남|경북|경남|제주)(?:특별자치시|특별자치도|특별시|광역시|도|시)?[가-힣0-9\s-]{1,40}(?:시|군|구|동|읍|면|리|로|길|번지|호|아파트|빌딩|타워)`)
	// Bare 5-digit postal code.
	rePostal = regexp.MustCompile(`\b\d{5}\b`)
)

// Address detects Korean street/administrative addresses and bare postal
// codes.
func Address(text string) []types.Match {
	out := findAll(text, reAddress, types.CatAddress, addressConfidence)
	out = append(out, findAll(text, rePostal, types.CatAddress, addressConfidence)...)
	return out
}
