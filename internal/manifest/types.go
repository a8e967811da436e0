package manifest

// FileName is the name of the manifest file inside a template directory.
const FileName = "template.yaml"

// TemplateManifest describes a template.
type TemplateManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Requires    string   `yaml:"requires,omitempty" json:"requires,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
}
