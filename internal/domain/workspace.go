package domain

// DefaultWorkspaceImage is the placeholder shown until an image is set.
const DefaultWorkspaceImage = "/static/workspace_images/default_workspace_image.png"

// Workspace groups work under a unique name.
type Workspace struct {
	Model          `bson:",inline"`
	WorkspaceName  string `bson:"workspace_name" json:"workspace_name"`
	Description    string `bson:"description,omitempty" json:"description,omitempty"`
	WorkspaceImage string `bson:"workspace_image" json:"workspace_image"`
}

// Collection returns the workspaces collection name.
func (Workspace) Collection() string { return "workspaces" }

// NewWorkspace builds a workspace with the default image when none is given.
func NewWorkspace(name, description, image string) Workspace {
	if image == "" {
		image = DefaultWorkspaceImage
	}
	return Workspace{
		Model:          NewModel(),
		WorkspaceName:  name,
		Description:    description,
		WorkspaceImage: image,
	}
}
