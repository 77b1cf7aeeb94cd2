// Package taxonomy maintains the growing value sets behind the product
// attribute pickers. Each field has one shared, append-only set of known
// values; the resolver merges that set with whatever already sits on the
// record being edited, so a historical value never disappears from its picker
// even when the shared set does not (yet) contain it.
package taxonomy

import (
	"log"
	"regexp"
	"strings"
)

// Attribute fields with a shared enumeration.
const (
	FieldValveType      = "valve_type"
	FieldManufacturer   = "manufacturer"
	FieldSize           = "size"
	FieldPressureClass  = "pressure_class"
	FieldConnectionType = "connection_type"
	FieldBodyStyle      = "body_style"
	FieldFailAction     = "fail_action"
	FieldBodyMaterial   = "body_material"
	FieldTrimMaterial   = "trim_material"
	FieldSeatMaterial   = "seat_material"
	FieldStemMaterial   = "stem_material"
	FieldActuatorType   = "actuator_type"
	FieldActuatorBrand  = "actuator_brand"
	FieldActuatorModel  = "actuator_model"
	FieldActuatorAction = "actuator_action"
	FieldAccessoryKey   = "accessory_key"
	FieldAccessoryBrand = "accessory_brand"
	FieldAccessoryModel = "accessory_model"
)

// Fields lists every taxonomy field, in display order.
var Fields = []string{
	FieldValveType,
	FieldManufacturer,
	FieldSize,
	FieldPressureClass,
	FieldConnectionType,
	FieldBodyStyle,
	FieldFailAction,
	FieldBodyMaterial,
	FieldTrimMaterial,
	FieldSeatMaterial,
	FieldStemMaterial,
	FieldActuatorType,
	FieldActuatorBrand,
	FieldActuatorModel,
	FieldActuatorAction,
	FieldAccessoryKey,
	FieldAccessoryBrand,
	FieldAccessoryModel,
}

// SeedSets are the vocabularies available even when the backend has no data.
var SeedSets = map[string][]string{
	FieldValveType:    {"control", "on_off", "safety", "butterfly", "ball", "globe"},
	FieldActuatorType: {"pneumatic", "electric", "hydraulic", "manual"},
}

// Service is the backend surface the resolver consumes.
type Service interface {
	GetTaxonomy() (map[string][]string, error)
	PostTaxonomyValue(field, value string) error
}

// Resolver owns the in-memory field sets for one editing session. Construct a
// fresh one per test; there is no hidden shared cache.
type Resolver struct {
	svc  Service
	sets map[string][]string
}

// NewResolver builds a resolver pre-populated with the seed vocabularies.
func NewResolver(svc Service) *Resolver {
	r := &Resolver{svc: svc, sets: make(map[string][]string)}
	for field, values := range SeedSets {
		r.sets[field] = append([]string(nil), values...)
	}
	return r
}

// Load refreshes every field set from the backend, unioned over the seeds. A
// read failure keeps the seed vocabularies so the pickers stay usable.
func (r *Resolver) Load() {
	remote, err := r.svc.GetTaxonomy()
	if err != nil {
		log.Printf("taxonomy: shared sets unavailable, using seeds: %v", err)
		return
	}
	for field, values := range remote {
		for _, v := range values {
			r.add(field, v)
		}
	}
}

// Values returns the current candidate list for a field.
func (r *Resolver) Values(field string) []string {
	return r.sets[field]
}

// Sets returns the full field→values map (shared by reference with the
// resolver; treat as read-only).
func (r *Resolver) Sets() map[string][]string {
	return r.sets
}

// Publish records a newly typed value: trims it, ignores empties and known
// values, appends it to the in-memory set and persists it to the shared
// taxonomy. The in-memory set keeps the value even when persistence fails, so
// nothing typed is lost; the error is returned for the caller to surface.
func (r *Resolver) Publish(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if !r.add(field, value) {
		return nil
	}
	return r.svc.PostTaxonomyValue(field, value)
}

// add appends the value when absent and reports whether it was new.
func (r *Resolver) add(field, value string) bool {
	for _, existing := range r.sets[field] {
		if existing == value {
			return false
		}
	}
	r.sets[field] = append(r.sets[field], value)
	return true
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Slugify lowercases a free-form key and collapses whitespace runs to single
// underscores: "Limit Switch " becomes "limit_switch".
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	return whitespaceRe.ReplaceAllString(value, "_")
}
