// Package domain defines the core business types for the tradepost marketplace.
package domain

import (
	"math"
	"time"
)

// CategoryCode enumerates item categories as small integer codes.
// Zero means unset and is never a valid category.
type CategoryCode int16

// Category code constants. The accepted range is -2 through 6; 0 is the
// unset sentinel and is rejected everywhere.
const (
	CategoryClearance   CategoryCode = -2
	CategoryFree        CategoryCode = -1
	CategoryUnset       CategoryCode = 0
	CategoryElectronics CategoryCode = 1
	CategoryClothing    CategoryCode = 2
	CategoryHome        CategoryCode = 3
	CategoryBooks       CategoryCode = 4
	CategorySports      CategoryCode = 5
	CategoryOther       CategoryCode = 6
)

// categoryNames maps valid category codes to display names.
var categoryNames = map[CategoryCode]string{
	CategoryClearance:   "clearance",
	CategoryFree:        "free",
	CategoryElectronics: "electronics",
	CategoryClothing:    "clothing",
	CategoryHome:        "home",
	CategoryBooks:       "books",
	CategorySports:      "sports",
	CategoryOther:       "other",
}

// Valid reports whether the code is in the closed set of recognized
// categories. CategoryUnset is not valid even though it lies inside the
// numeric range.
func (c CategoryCode) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// String returns the display name for the code, or "unknown".
func (c CategoryCode) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ConditionCode enumerates item physical condition grades.
// Zero means unset and is never a valid condition.
type ConditionCode int16

// Condition code constants.
const (
	ConditionUnset      ConditionCode = 0
	ConditionNew        ConditionCode = 1
	ConditionLikeNew    ConditionCode = 2
	ConditionGood       ConditionCode = 3
	ConditionAcceptable ConditionCode = 4
	ConditionForParts   ConditionCode = 5
)

// conditionNames maps valid condition codes to display names.
var conditionNames = map[ConditionCode]string{
	ConditionNew:        "new",
	ConditionLikeNew:    "like_new",
	ConditionGood:       "good",
	ConditionAcceptable: "acceptable",
	ConditionForParts:   "for_parts",
}

// Valid reports whether the code is a recognized condition grade.
func (c ConditionCode) Valid() bool {
	_, ok := conditionNames[c]
	return ok
}

// String returns the display name for the code, or "unknown".
func (c ConditionCode) String() string {
	if name, ok := conditionNames[c]; ok {
		return name
	}
	return "unknown"
}

// ImageNone is the sentinel stored when a seller provides no image.
const ImageNone = "[ NONE ]"

// Item is a listed marketplace item.
type Item struct {
	ID        int64         `json:"id"        db:"id"`
	Type      CategoryCode  `json:"type"      db:"type"`
	Name      string        `json:"name"      db:"name"`
	Seller    string        `json:"seller"    db:"seller"`
	Image     string        `json:"image"     db:"image"`
	Condition ConditionCode `json:"condition" db:"condition"`
	Price     float64       `json:"price"     db:"price"`
	ListedAt  time.Time     `json:"listed_at" db:"listed_at"`
}

// AuthToken maps an opaque bearer token to a username and expiry.
// Rows are created and refreshed by the authentication subsystem; this
// service only reads them. A token is valid iff its expiry is strictly
// in the future.
type AuthToken struct {
	Token    string    `json:"token"    db:"token"`
	Username string    `json:"username" db:"username"`
	Expiry   time.Time `json:"expiry"   db:"expiry"`
}

// Expired reports whether the token is expired at the given instant.
// A token expiring exactly now is treated as expired.
func (t *AuthToken) Expired(now time.Time) bool {
	return !t.Expiry.After(now)
}

// SellRequest is the payload for listing a new item. The seller identity
// is derived from the token, never from the request.
type SellRequest struct {
	Token     string        `json:"token"`
	Type      CategoryCode  `json:"type"`
	Name      string        `json:"name"`
	Image     string        `json:"image,omitempty"`
	Condition ConditionCode `json:"condition"`
	Price     float64       `json:"price"`
}

// RoundPrice rounds a price to 2 fractional digits, half away from zero.
// Decimal inputs sitting on the .xx5 boundary land just below it in binary
// (19.995*100 == 1999.4999...), so the scaled value is nudged toward the
// boundary before rounding.
func RoundPrice(p float64) float64 {
	scaled := p*100 + math.Copysign(1e-9, p)
	return math.Round(scaled) / 100
}
