package generator

import (
	"fmt"
	"strings"
)

type ssnRange struct {
	state     string
	minPrefix int
	maxPrefix int
}

// Area number ranges by issuing state. One range per state; 580 and up
// belong to territories and are left out.
var ssnRanges = []ssnRange{
	{"NH", 1, 3}, {"ME", 4, 7}, {"VT", 8, 9}, {"MA", 10, 34}, {"RI", 35, 39},
	{"CT", 40, 49}, {"NY", 50, 134}, {"NJ", 135, 158}, {"PA", 159, 211}, {"MD", 212, 220},
	{"DE", 221, 222}, {"VA", 223, 231}, {"WV", 232, 236}, {"NC", 237, 246}, {"SC", 247, 251},
	{"GA", 252, 260}, {"FL", 263, 267}, {"OH", 268, 302}, {"IN", 303, 317}, {"IL", 318, 361},
	{"MI", 362, 386}, {"WI", 387, 399}, {"KY", 400, 407}, {"TN", 408, 415}, {"AL", 416, 424},
	{"MS", 425, 428}, {"AR", 429, 432}, {"LA", 433, 439}, {"OK", 440, 448}, {"TX", 449, 467},
	{"MN", 468, 477}, {"IA", 478, 485}, {"MO", 486, 500}, {"ND", 501, 502}, {"SD", 503, 504}, {"NE", 505, 508},
	{"KS", 509, 515}, {"MT", 516, 517}, {"ID", 518, 519}, {"WY", 520, 520}, {"CO", 521, 524},
	{"NM", 525, 525}, {"AZ", 526, 527}, {"UT", 528, 529}, {"NV", 530, 530}, {"WA", 531, 539},
	{"OR", 540, 544}, {"CA", 545, 573}, {"AK", 574, 574}, {"HI", 575, 576}, {"DC", 577, 579},
}

var ssnByState = func() map[string]ssnRange {
	res := make(map[string]ssnRange, len(ssnRanges))
	for _, r := range ssnRanges {
		res[r.state] = r
	}
	return res
}()

// SSN returns 9 digits whose area number belongs to stateCode. An empty code
// draws a state from the store; a code without a range draws one of the known
// states instead.
func (g *Generator) SSN(stateCode string) (string, error) {
	stateCode = strings.ToUpper(strings.TrimSpace(stateCode))
	if stateCode == "" {
		st, err := g.State("")
		if err != nil {
			return "", err
		}
		stateCode = st.Code
	}

	r, ok := ssnByState[stateCode]
	if !ok {
		r, _ = ChooseUniform(g.rnd, ssnRanges)
	}

	// the area number is always the low end of the range
	prefix := g.rnd.Int(r.minPrefix, r.minPrefix)
	suffix := g.rnd.Int(100000, 999999)
	return fmt.Sprintf("%03d%06d", prefix, suffix), nil
}
