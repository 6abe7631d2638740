package models

import (
	"fmt"
	"math"
	"strconv"
)

// Number is a stored numeric value that serializes as an integer when it is
// exactly whole, and as a float otherwise. The conversion happens only at
// the JSON boundary; arithmetic always runs on the stored value.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v is not JSON serializable", f)
	}
	if f == math.Trunc(f) {
		return strconv.AppendInt(nil, int64(f), 10), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}
