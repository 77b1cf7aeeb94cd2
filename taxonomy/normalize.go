package taxonomy

import (
	"log"

	"github.com/yilfev-stack/yeniservisrapor26022026/models"
)

// ProductForm is an edit-ready product: the record with every optional nested
// structure defaulted, plus one candidate list per attribute field.
type ProductForm struct {
	Record  models.ProductPayload
	Options map[string][]string
}

// RecordValues maps each taxonomy field to its value on the record.
func RecordValues(record *models.ProductPayload) map[string]string {
	values := map[string]string{
		FieldValveType:      record.ValveType,
		FieldManufacturer:   record.Manufacturer,
		FieldSize:           record.Size,
		FieldPressureClass:  record.PressureClass,
		FieldConnectionType: record.ConnectionType,
		FieldBodyStyle:      record.BodyStyle,
		FieldFailAction:     record.FailAction,
		FieldBodyMaterial:   record.BodyMaterial,
		FieldTrimMaterial:   record.TrimMaterial,
		FieldSeatMaterial:   record.SeatMaterial,
		FieldStemMaterial:   record.StemMaterial,
	}
	if record.Actuator != nil {
		values[FieldActuatorType] = record.Actuator.Type
		values[FieldActuatorBrand] = record.Actuator.Brand
		values[FieldActuatorModel] = record.Actuator.Model
		values[FieldActuatorAction] = record.Actuator.Action
	}
	return values
}

// Normalize produces an edit-ready form from an externally loaded record and
// the current shared sets. Every candidate list is the union of the shared
// set and the value already on the record, so a historical value absent from
// the shared taxonomy still shows in its picker. Pure function, no I/O.
func Normalize(record models.ProductPayload, fieldSets map[string][]string) ProductForm {
	if record.Actuator == nil {
		record.Actuator = &models.ActuatorInfo{}
	}
	if record.Accessories == nil {
		record.Accessories = []models.AccessoryInfo{}
	}
	if record.TechnicalCard == nil {
		record.TechnicalCard = map[string]interface{}{}
	}

	options := make(map[string][]string, len(Fields))
	for _, field := range Fields {
		options[field] = append([]string(nil), fieldSets[field]...)
	}

	own := RecordValues(&record)
	for _, accessory := range record.Accessories {
		mergeOption(options, FieldAccessoryKey, accessory.Key)
		mergeOption(options, FieldAccessoryBrand, accessory.Brand)
		mergeOption(options, FieldAccessoryModel, accessory.Model)
	}
	for field, value := range own {
		mergeOption(options, field, value)
	}

	return ProductForm{Record: record, Options: options}
}

// NormalizeProduct is Normalize against the resolver's current sets.
func (r *Resolver) NormalizeProduct(record models.ProductPayload) ProductForm {
	return Normalize(record, r.sets)
}

func mergeOption(options map[string][]string, field, value string) {
	if value == "" {
		return
	}
	for _, existing := range options[field] {
		if existing == value {
			return
		}
	}
	options[field] = append(options[field], value)
}

// PublishAllFromRecord promotes every non-empty attribute on a saved record
// into the shared taxonomy, accessory rows included. Called on product save
// so typing a new value anywhere grows the enumeration without a separate
// administrative step. The first persistence failure is returned; in-memory
// sets are grown regardless.
func (r *Resolver) PublishAllFromRecord(record models.ProductPayload) error {
	var firstErr error
	publish := func(field, value string) {
		if err := r.Publish(field, value); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for field, value := range RecordValues(&record) {
		publish(field, value)
	}
	for _, accessory := range record.Accessories {
		publish(FieldAccessoryKey, accessory.Key)
		publish(FieldAccessoryBrand, accessory.Brand)
		publish(FieldAccessoryModel, accessory.Model)
	}
	return firstErr
}

// AddCustomAccessory slugifies an operator-typed key, publishes it and
// appends a default accessory row to the record. Returns false when the key
// is blank after slugification.
func (r *Resolver) AddCustomAccessory(record *models.ProductPayload, key string) bool {
	slug := Slugify(key)
	if slug == "" || slug == "_" {
		return false
	}
	if err := r.Publish(FieldAccessoryKey, slug); err != nil {
		log.Printf("taxonomy: publish accessory key failed: %v", err)
	}
	record.Accessories = append(record.Accessories, models.AccessoryInfo{Key: slug})
	return true
}
