package stages

import "github.com/yaklabco/slidefilter/pkg/rewrite"

// RegisterAll registers all built-in stages with the given registry.
func RegisterAll(registry *rewrite.Registry) {
	registry.Register(NewLineEndingsStage())    // SF000
	registry.Register(NewContainerStage())      // SF001
	registry.Register(NewCalloutStage())        // SF002
	registry.Register(NewHorizontalRuleStage()) // SF003
	registry.Register(NewHeadingCountStage())   // SF004
	registry.Register(NewHeaderCountStage())    // SF005
}

// init registers all built-in stages with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic stage registration
func init() {
	RegisterAll(rewrite.DefaultRegistry)
}
