package drawer

// Drawer is an interface that defines the methods for drawing a pipeline's
// stage graph.
type Drawer interface {
	// AddStage adds a stage vertex at the given nesting depth.
	AddStage(name string, depth int) error
	// AddLink adds a link between two stage vertices.
	AddLink(parentName, childName string) error
	// Draw creates a file with the pipeline graph.
	Draw() error
}
