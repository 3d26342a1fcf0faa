package schema

import (
	"sync"

	"github.com/vvka-141/premisgen/internal/binding"
)

// Collaborators returns the factory, type index and decoder of the binding.
func Collaborators() binding.Collaborators {
	return binding.Collaborators{
		Factory:   NewObjectFactory(),
		Types:     NewTypeIndex(),
		Decoder:   Decoder{},
		Namespace: Namespace,
	}
}

// NewRegistry returns a registry with the default strategy chain for
// every PREMIS kind.
func NewRegistry() *binding.Registry {
	return binding.NewRegistry(Specs(), Collaborators())
}

var attachments = sync.OnceValue(func() binding.AttachmentTable {
	return binding.BuildAttachmentTable(Specs())
})

// Attachments returns the (parent, child) -> property table derived from
// the binding types. The table is built once and must not be modified.
func Attachments() binding.AttachmentTable {
	return attachments()
}
