// Package registry manages component-definition registration and
// instantiation. Component packages register a factory under their type
// name in init; pipeline assembly then creates definitions by name from
// decoded configuration.
package registry

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cadenza-ml/cadenza/pkg/channel"
	"github.com/cadenza-ml/cadenza/pkg/component"
	"github.com/cadenza-ml/cadenza/pkg/errors"
	"github.com/cadenza-ml/cadenza/pkg/logger"
)

// Factory builds a component definition from named input channels and
// decoded parameters. Parameter maps come from pipeline definition files;
// factories are responsible for coercing them into their typed form.
type Factory func(inputs map[string]*channel.Channel, params map[string]interface{}) (component.Definition, error)

// Registry manages component factories
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
	logger    *zap.Logger
}

// Global registry instance
var globalRegistry = NewRegistry()

// NewRegistry creates a new component registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		logger:    logger.Get().With(zap.String("component", "component_registry")),
	}
}

// Register registers a component factory under a type name
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return errors.New(errors.ErrorTypeConfig, fmt.Sprintf("component type %s already registered", name))
	}

	r.factories[name] = factory
	r.logger.Info("component type registered", zap.String("name", name))
	return nil
}

// Create builds a component definition of the named type
func (r *Registry) Create(name string, inputs map[string]*channel.Channel, params map[string]interface{}) (component.Definition, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.New(errors.ErrorTypeNotFound, fmt.Sprintf("component type %s not found", name))
	}

	def, err := factory(inputs, params)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, fmt.Sprintf("failed to create %s component", name))
	}

	return def, nil
}

// List returns the registered component type names
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

// Has checks if a component type is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.factories[name]
	return exists
}

// Clear removes all registered factories (mainly for testing)
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = make(map[string]Factory)
}

// Global registry functions

// Register registers a component factory in the global registry
func Register(name string, factory Factory) error {
	return globalRegistry.Register(name, factory)
}

// Create builds a component definition from the global registry
func Create(name string, inputs map[string]*channel.Channel, params map[string]interface{}) (component.Definition, error) {
	return globalRegistry.Create(name, inputs, params)
}

// List returns component types registered in the global registry
func List() []string {
	return globalRegistry.List()
}

// Has checks if a component type is registered in the global registry
func Has(name string) bool {
	return globalRegistry.Has(name)
}

// GetRegistry returns the global registry instance
func GetRegistry() *Registry {
	return globalRegistry
}

// ComponentInfo provides metadata about a component type
type ComponentInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Executor    string   `json:"executor"`
	InputKeys   []string `json:"input_keys"`
	OutputKeys  []string `json:"output_keys"`
}

// Catalog manages component metadata
type Catalog struct {
	components map[string]*ComponentInfo
	mu         sync.RWMutex
}

// NewCatalog creates a new component catalog
func NewCatalog() *Catalog {
	return &Catalog{
		components: make(map[string]*ComponentInfo),
	}
}

// Register adds a component type to the catalog
func (c *Catalog) Register(info *ComponentInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.components[info.Name]; exists {
		return errors.New(errors.ErrorTypeConfig, fmt.Sprintf("component %s already in catalog", info.Name))
	}

	c.components[info.Name] = info
	return nil
}

// Get retrieves component metadata
func (c *Catalog) Get(name string) (*ComponentInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, exists := c.components[name]
	if !exists {
		return nil, errors.New(errors.ErrorTypeNotFound, fmt.Sprintf("component %s not found in catalog", name))
	}

	return info, nil
}

// List returns all component metadata in the catalog
func (c *Catalog) List() []*ComponentInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	infos := make([]*ComponentInfo, 0, len(c.components))
	for _, info := range c.components {
		infos = append(infos, info)
	}
	return infos
}

// Global catalog instance
var globalCatalog = NewCatalog()

// RegisterComponentInfo registers component metadata in the global catalog
func RegisterComponentInfo(info *ComponentInfo) error {
	return globalCatalog.Register(info)
}

// GetComponentInfo retrieves component metadata from the global catalog
func GetComponentInfo(name string) (*ComponentInfo, error) {
	return globalCatalog.Get(name)
}

// ListComponentInfo lists all component metadata in the global catalog
func ListComponentInfo() []*ComponentInfo {
	return globalCatalog.List()
}
