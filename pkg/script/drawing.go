package script

import (
	"errors"
	"fmt"
	"slices"

	"github.com/OpenTraceLab/OpenTraceSch/pkg/object"
)

// AllObjects is the target name that addresses every object in a drawing.
const AllObjects = "all"

var (
	ErrUnknownObject = errors.New("unknown object")
	ErrDuplicateName = errors.New("name already in use")
	ErrReservedName  = errors.New("reserved name")
)

// Drawing owns a set of named objects in insertion order.
type Drawing struct {
	names   []string
	objects map[string]*object.Object
}

// NewDrawing creates an empty drawing.
func NewDrawing() *Drawing {
	return &Drawing{objects: make(map[string]*object.Object)}
}

// Add stores o under name.
func (d *Drawing) Add(name string, o *object.Object) error {
	if name == AllObjects {
		return fmt.Errorf("%q: %w", name, ErrReservedName)
	}
	if _, ok := d.objects[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	d.names = append(d.names, name)
	d.objects[name] = o
	return nil
}

// Get returns the object stored under name.
func (d *Drawing) Get(name string) (*object.Object, error) {
	o, ok := d.objects[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownObject)
	}
	return o, nil
}

// Remove deletes the object stored under name.
func (d *Drawing) Remove(name string) error {
	if _, ok := d.objects[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownObject)
	}
	delete(d.objects, name)
	d.names = slices.DeleteFunc(d.names, func(n string) bool { return n == name })
	return nil
}

// Names returns the object names in insertion order.
func (d *Drawing) Names() []string {
	return slices.Clone(d.names)
}

// Len returns the number of objects.
func (d *Drawing) Len() int {
	return len(d.names)
}

// Objects returns the objects in insertion order.
func (d *Drawing) Objects() []*object.Object {
	objs := make([]*object.Object, 0, len(d.names))
	for _, name := range d.names {
		objs = append(objs, d.objects[name])
	}
	return objs
}

// Resolve returns the objects a statement target names: a single object,
// or all of them for AllObjects.
func (d *Drawing) Resolve(target string) ([]*object.Object, error) {
	if target == AllObjects {
		return d.Objects(), nil
	}
	o, err := d.Get(target)
	if err != nil {
		return nil, err
	}
	return []*object.Object{o}, nil
}
