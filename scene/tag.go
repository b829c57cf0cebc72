package scene

// Tag is a node's structural role. Tags are selectors, not identities: many
// nodes share a tag, and broadcast parameter changes address every live node
// carrying one.
type Tag string

const (
	TagNone          Tag = ""
	TagTerrain       Tag = "terrain"
	TagWater         Tag = "water"
	TagTree          Tag = "tree"
	TagTrunk         Tag = "trunk"
	TagLeaves        Tag = "leaves"
	TagSnowParticles Tag = "snow-particles"
)

// Tags lists every selectable tag.
var Tags = []Tag{TagTerrain, TagWater, TagTree, TagTrunk, TagLeaves, TagSnowParticles}

// Valid reports whether t belongs to the closed tag set (TagNone included).
func (t Tag) Valid() bool {
	if t == TagNone {
		return true
	}
	for _, known := range Tags {
		if t == known {
			return true
		}
	}
	return false
}

func (t Tag) String() string {
	if t == TagNone {
		return "none"
	}
	return string(t)
}
