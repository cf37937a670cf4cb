package model

// PlaceholderAvatar is the asset shown for members without a photo
const PlaceholderAvatar = "placeholder.svg"

// Column names of the References sheet
var (
	ColPersonName = []string{"Person Name", "Name"}
	ColRole       = []string{"Role"}
	ColPhoto      = []string{"Photo"}
)

// TeamMember is a directory entry
type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoKey string `json:"photo_key,omitempty"`
}

// Key returns the normalized name used for matching
func (m TeamMember) Key() string {
	return NormalizeName(m.Name)
}

// Avatar returns the photo asset, or the placeholder when none is mapped
func (m TeamMember) Avatar() string {
	if m.PhotoKey == "" {
		return PlaceholderAvatar
	}
	return m.PhotoKey
}

// HasPhoto reports whether a photo asset is mapped
func (m TeamMember) HasPhoto() bool {
	return m.PhotoKey != ""
}

// ParseTeamMembers converts the References sheet into directory entries.
// Rows without a person name are skipped.
func ParseTeamMembers(t *Table) []TeamMember {
	if t == nil {
		return nil
	}

	members := make([]TeamMember, 0, len(t.Rows))
	for _, raw := range t.Rows {
		name := t.Value(raw, ColPersonName...)
		if name == "" {
			continue
		}
		members = append(members, TeamMember{
			Name:     name,
			Role:     t.Value(raw, ColRole...),
			PhotoKey: t.Value(raw, ColPhoto...),
		})
	}
	return members
}

// TeamPhotos maps person names to photo asset keys
type TeamPhotos struct {
	Photos map[string]string `yaml:"photos"`
}

// Lookup returns the photo for a name, matching case and whitespace insensitively
func (p *TeamPhotos) Lookup(name string) string {
	if p == nil {
		return ""
	}
	key := NormalizeName(name)
	for n, photo := range p.Photos {
		if NormalizeName(n) == key {
			return photo
		}
	}
	return ""
}

// Apply fills PhotoKey of members that have none
func (p *TeamPhotos) Apply(members []TeamMember) []TeamMember {
	if p == nil || len(p.Photos) == 0 {
		return members
	}
	result := make([]TeamMember, len(members))
	for i, m := range members {
		if m.PhotoKey == "" {
			m.PhotoKey = p.Lookup(m.Name)
		}
		result[i] = m
	}
	return result
}
