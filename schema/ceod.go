package schema

// Level is the severity band of a ceo-d index. Its string form is what gets stored.
type Level string

const (
	LevelVeryLow  Level = "very-low"
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very-high"
)

// Levels lists every band from the mildest to the most severe.
var Levels = []Level{
	LevelVeryLow,
	LevelLow,
	LevelModerate,
	LevelHigh,
	LevelVeryHigh,
}

const (
	MessageControlled   = "Controlled decay index."
	MessageIntervention = "Need for incisive dental intervention."
)

// Rank returns the position of the level in Levels, or -1 for a value
// outside the enumeration.
func (l Level) Rank() int {
	for i, v := range Levels {
		if v == l {
			return i
		}
	}
	return -1
}

func (l Level) Valid() bool {
	return l.Rank() >= 0
}

// Controlled reports whether the band needs no dental intervention.
func (l Level) Controlled() bool {
	return l == LevelVeryLow || l == LevelLow
}

func (l Level) String() string {
	return string(l)
}

// Observation is the raw counts collected for one survey location.
type Observation struct {
	Carious   int `json:"carious" bson:"carious"`
	Extracted int `json:"extracted" bson:"extracted"`
	Filled    int `json:"filled" bson:"filled"`
	Children  int `json:"children" bson:"children"`
}

// Normalize clamps negative tooth counts to zero and a non-positive
// number of children to one.
func (o Observation) Normalize() Observation {
	return Observation{
		Carious:   clampCount(o.Carious, 0),
		Extracted: clampCount(o.Extracted, 0),
		Filled:    clampCount(o.Filled, 0),
		Children:  clampCount(o.Children, 1),
	}
}

// Teeth is the number of decayed, extracted and filled teeth.
func (o Observation) Teeth() int {
	return o.Carious + o.Extracted + o.Filled
}

func clampCount(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// Result is the classification of an observation at the time it was calculated.
type Result struct {
	Index   float64 `json:"index" bson:"index"`
	Level   Level   `json:"level" bson:"level"`
	Message string  `json:"message" bson:"message"`
}
