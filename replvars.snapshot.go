package replvars

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is a self-contained description of one render: the post fields,
// the render flags and the lookups an EntitySource would answer. It is the
// CLI's input format and a convenient source for tests.
type Snapshot struct {
	Post    Fields  `yaml:"post"`
	Flags   Flags   `yaml:"flags"`
	Archive Archive `yaml:"archive"`

	// Taxonomies maps taxonomy to the terms attached to the snapshot post.
	Taxonomies map[string][]Term `yaml:"terms"`

	// Titles maps post ids to titles, e.g. for parent lookups.
	Titles map[int64]string `yaml:"titles"`

	PasswordProtected bool `yaml:"password_protected"`
}

// ParseSnapshot decodes a YAML snapshot.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	return parseSnapshot(data, "")
}

// LoadSnapshot reads a YAML snapshot file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewSnapshotError(ErrMsgSnapshotRead, path, err)
	}
	return parseSnapshot(data, path)
}

func parseSnapshot(data []byte, path string) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, NewSnapshotError(ErrMsgSnapshotParse, path, err)
	}
	return &s, nil
}

// Context builds the resolution context of the snapshot over DefaultFields.
func (s *Snapshot) Context() *ResolutionContext {
	return NewResolutionContext(DefaultFields(), s.Post, s.Flags, s.Archive)
}

func (s *Snapshot) postID() int64 {
	return parseID(s.Post[FieldID])
}

// Title implements EntitySource.
func (s *Snapshot) Title(_ context.Context, id int64) (string, error) {
	if id == s.postID() && id != 0 {
		if title, ok := s.Titles[id]; ok {
			return title, nil
		}
		return s.Post[FieldTitle], nil
	}
	return s.Titles[id], nil
}

// Terms implements EntitySource. Only the snapshot post has terms.
func (s *Snapshot) Terms(_ context.Context, id int64, taxonomy string) ([]Term, error) {
	if id == 0 || id != s.postID() {
		return nil, nil
	}
	return s.Taxonomies[taxonomy], nil
}

// PasswordRequired implements EntitySource.
func (s *Snapshot) PasswordRequired(_ context.Context, id int64) (bool, error) {
	return id == s.postID() && s.PasswordProtected, nil
}
