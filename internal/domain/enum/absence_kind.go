package enum

import "encoding/json"

// AbsenceKind distinguishes a full missed day from a half day
type AbsenceKind string

const (
	AbsenceKindFull AbsenceKind = "full"
	AbsenceKindHalf AbsenceKind = "half"
)

// Days returns the fraction of a day the absence counts for.
func (k AbsenceKind) Days() float64 {
	if k == AbsenceKindHalf {
		return 0.5
	}
	return 1
}

func (k AbsenceKind) String() string {
	return string(k)
}

func (k AbsenceKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(k))
}

func (k *AbsenceKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*k = AbsenceKind(str)
	return nil
}
