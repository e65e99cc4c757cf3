package ambientcg

import "fmt"

/**
 * @brief A texture resolution tier of an AmbientCG asset pack. Tiers are
 * totally ordered; fallback walks them downwards only.
 */
type Resolution int

const (
	ResolutionOneK Resolution = iota
	ResolutionTwoK
	ResolutionFourK
	ResolutionEightK
	ResolutionTwelveK
	ResolutionSixteenK
)

var resolutionSuffixes = map[Resolution]string{
	ResolutionOneK:     "1K",
	ResolutionTwoK:     "2K",
	ResolutionFourK:    "4K",
	ResolutionEightK:   "8K",
	ResolutionTwelveK:  "12K",
	ResolutionSixteenK: "16K",
}

// String returns the canonical suffix used in AmbientCG file and directory
// names, e.g. "2K".
func (r Resolution) String() string {
	if s, ok := resolutionSuffixes[r]; ok {
		return s
	}
	return fmt.Sprintf("Resolution(%d)", int(r))
}

// NextSmaller returns the tier one step below r. Below the smallest tier
// there is nowhere left to fall back to and ErrResolutionUnavailable is
// returned.
func (r Resolution) NextSmaller() (Resolution, error) {
	if r <= ResolutionOneK || r > ResolutionSixteenK {
		return r, ErrResolutionUnavailable
	}
	return r - 1, nil
}

// ParseResolution converts a suffix string such as "4K" back to its tier.
func ParseResolution(s string) (Resolution, error) {
	for r, suffix := range resolutionSuffixes {
		if s == suffix {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resolution %q", s)
}

// NegotiateResolution returns the largest tier at or below requested for
// which probe reports true. It never searches upwards: shipping only small
// tiers must degrade quality, not upgrade it behind the caller's back. If no
// tier at or below requested is present it returns ErrResolutionUnavailable.
func NegotiateResolution(requested Resolution, probe func(Resolution) bool) (Resolution, error) {
	res := requested
	for {
		if probe(res) {
			return res, nil
		}
		next, err := res.NextSmaller()
		if err != nil {
			return requested, fmt.Errorf("%w: no tier at or below %s", ErrResolutionUnavailable, requested)
		}
		res = next
	}
}
