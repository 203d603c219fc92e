package domain

import "fmt"

// QualityRange is an inclusive range of link quality scores.
type QualityRange struct {
	Min int
	Max int
}

var (
	DirectQuality = QualityRange{Min: 80, Max: 99}
	ProxyQuality  = QualityRange{Min: 60, Max: 99}
)

func (r QualityRange) Validate() error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("invalid quality range [%d,%d]", r.Min, r.Max)
	}
	return nil
}

// Sample maps intn, which must return a value in [0,n), onto the range.
func (r QualityRange) Sample(intn func(n int) int) int {
	return r.Min + intn(r.Max-r.Min+1)
}
