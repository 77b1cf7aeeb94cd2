package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService is an in-memory backend for wizard sessions. Catalog entries
// with an empty ValveType apply to every valve type.
type fakeService struct {
	customers []models.CustomerOption
	products  []models.ProductOption
	catalog   []models.CatalogEntry

	customersErr error
	catalogErr   error
	createErr    error

	catalogCalls  []string
	created       []models.ReportPayload
	onCatalogCall func(valveType string)
}

func (f *fakeService) ListCustomers() ([]models.CustomerOption, error) {
	if f.customersErr != nil {
		return nil, f.customersErr
	}
	return f.customers, nil
}

func (f *fakeService) ListProducts() ([]models.ProductOption, error) {
	return f.products, nil
}

func (f *fakeService) ListActionCatalog(valveType string) ([]models.CatalogEntry, error) {
	f.catalogCalls = append(f.catalogCalls, valveType)
	if f.onCatalogCall != nil {
		f.onCatalogCall(valveType)
	}
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	var out []models.CatalogEntry
	for _, e := range f.catalog {
		if e.ValveType == "" || e.ValveType == valveType {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeService) CreateReport(payload models.ReportPayload) (*models.CreateResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, payload)
	return &models.CreateResult{ID: uint(len(f.created)), ReportNo: "SR-260831-001"}, nil
}

func newFakeService() *fakeService {
	return &fakeService{
		customers: []models.CustomerOption{{ID: 1, Name: "Tupras"}},
		products: []models.ProductOption{
			{ID: 10, Type: "valve", TagNo: "FV-1001", ValveType: "control"},
			{ID: 11, Type: "valve", TagNo: "XV-2002", ValveType: ""},
		},
		catalog: []models.CatalogEntry{
			{ID: 1, Scope: "valve", ValveType: "", TextTr: "Genel bakim yapildi.", TextEn: "General overhaul performed."},
			{ID: 2, Scope: "valve", ValveType: "control", TextTr: "Pozisyoner kalibre edildi.", TextEn: "Positioner calibrated."},
			{ID: 3, Scope: "valve", ValveType: "safety", TextTr: "Set basinci dogrulandi.", TextEn: "Set pressure verified."},
		},
	}
}

func TestStepNavigationClamps(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	assert.Equal(t, StepGeneral, c.Step())
	c.Back()
	assert.Equal(t, StepGeneral, c.Step(), "back at the first step should not move")

	for i := 0; i < 20; i++ {
		c.Next()
	}
	assert.Equal(t, StepResult, c.Step(), "next at the last step should not move")
}

func TestStepOrderAndLabels(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	expected := []string{"general", "product", "shipping", "complaint", "problems", "actions", "spares", "result"}
	for i, label := range expected {
		assert.Equal(t, label, c.Step().String())
		if i < len(expected)-1 {
			c.Next()
		}
	}
}

func TestInitDegradesOnListFailure(t *testing.T) {
	svc := newFakeService()
	svc.customersErr = errors.New("backend down")

	c := New(svc, "tr", "technician")

	assert.Empty(t, c.Customers)
	assert.NotEmpty(t, c.Products, "product list failure is independent of customers")
	assert.Equal(t, StepGeneral, c.Step(), "wizard stays usable")
}

func TestEnteringActionsStepFetchesFilteredCatalog(t *testing.T) {
	svc := newFakeService()
	c := New(svc, "tr", "technician")
	c.SelectProduct(10) // control valve

	for c.Step() != StepActions {
		c.Next()
	}

	require.Equal(t, []string{"control"}, svc.catalogCalls)
	require.Len(t, c.Catalog, 2)
	assert.Equal(t, uint(1), c.Catalog[0].ID, "unscoped entry included")
	assert.Equal(t, uint(2), c.Catalog[1].ID, "matching valve type included")
}

func TestValveTypeChangeRefetchesOnlyOnActionsStep(t *testing.T) {
	svc := newFakeService()
	c := New(svc, "tr", "technician")

	c.SetValveType("control")
	assert.Empty(t, svc.catalogCalls, "no fetch before the actions step")

	for c.Step() != StepActions {
		c.Next()
	}
	require.Len(t, svc.catalogCalls, 1)

	c.SetValveType("safety")
	require.Len(t, svc.catalogCalls, 2)
	assert.Equal(t, "safety", svc.catalogCalls[1])

	c.SetValveType("safety")
	assert.Len(t, svc.catalogCalls, 2, "setting the same value is a no-op")
}

func TestStaleCatalogFetchDiscarded(t *testing.T) {
	svc := newFakeService()
	c := New(svc, "tr", "technician")
	c.SetValveType("control")

	// Simulate the valve type changing while the fetch is in flight.
	svc.onCatalogCall = func(valveType string) {
		if valveType == "control" {
			c.Draft().ValveType = "safety"
		}
	}

	for c.Step() != StepActions {
		c.Next()
	}

	assert.Empty(t, c.Catalog, "superseded fetch must not populate the list")
}

func TestCatalogFetchFailureDegradesToEmpty(t *testing.T) {
	svc := newFakeService()
	c := New(svc, "tr", "technician")

	for c.Step() != StepActions {
		c.Next()
	}
	require.NotEmpty(t, c.Catalog)

	svc.catalogErr = errors.New("timeout")
	c.SetValveType("safety")
	assert.Empty(t, c.Catalog)
}

func TestSelectProductDerivesValveType(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")

	c.SelectProduct(10)
	assert.Equal(t, "control", c.Draft().ValveType)

	// A product without a recorded valve type keeps the current value.
	c.SelectProduct(11)
	assert.Equal(t, "control", c.Draft().ValveType)
}

func TestSaveAllowedAtAnyStep(t *testing.T) {
	svc := newFakeService()
	c := New(svc, "tr", "technician")
	c.SelectCustomer(1)

	_, err := c.Save()
	require.NoError(t, err)

	c.Next()
	c.Next()
	_, err = c.Save()
	require.NoError(t, err)

	require.Len(t, svc.created, 2)
	for _, payload := range svc.created {
		assert.Equal(t, models.StatusDraft, payload.Status)
		assert.Equal(t, uint(1), payload.CustomerID)
	}
}

func TestSaveFailureLeavesDraftEditable(t *testing.T) {
	svc := newFakeService()
	svc.createErr = errors.New("backend down")
	c := New(svc, "tr", "technician")
	c.SelectCustomer(1)
	c.Draft().ComplaintText = "leaking stem"

	_, err := c.Save()
	require.Error(t, err)

	assert.False(t, c.Submitted())
	assert.Equal(t, "leaking stem", c.Draft().ComplaintText)

	svc.createErr = nil
	_, err = c.Save()
	assert.NoError(t, err, "retry succeeds with the same draft")
}

func TestSubmitOnlyAtFinalStep(t *testing.T) {
	svc := newFakeService()
	c := New(svc, "tr", "technician")
	c.SelectCustomer(1)

	_, err := c.Submit()
	assert.ErrorIs(t, err, ErrNotAtFinalStep)

	for c.Step() != StepResult {
		c.Next()
	}
	result, err := c.Submit()
	require.NoError(t, err)
	assert.NotZero(t, result.ID)
	assert.True(t, c.Submitted())

	_, err = c.Submit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	_, err = c.Save()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSubmitFailureKeepsSessionOpen(t *testing.T) {
	svc := newFakeService()
	c := New(svc, "tr", "technician")
	for c.Step() != StepResult {
		c.Next()
	}

	svc.createErr = errors.New("backend down")
	_, err := c.Submit()
	require.Error(t, err)
	assert.False(t, c.Submitted())

	svc.createErr = nil
	_, err = c.Submit()
	assert.NoError(t, err)
}

func TestNavigationFrozenAfterSubmit(t *testing.T) {
	c := New(newFakeService(), "tr", "technician")
	for c.Step() != StepResult {
		c.Next()
	}
	_, err := c.Submit()
	require.NoError(t, err)

	c.Back()
	assert.Equal(t, StepResult, c.Step())
}

func TestFullSessionPayload(t *testing.T) {
	svc := newFakeService()
	c := New(svc, "en", "a.tekin")

	c.SelectCustomer(1)
	c.Next() // product
	c.SelectProduct(10)
	c.Next() // shipping
	arrival := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	shipping := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	c.Draft().ArrivalDate = &arrival
	c.Draft().ShippingDate = &shipping
	c.Next() // complaint
	c.Draft().ComplaintText = "Valve fails to seat"
	c.Next() // problems
	c.Draft().ProblemsText = "Seat ring eroded"
	c.Next() // actions

	require.Len(t, c.Catalog, 2)
	assert.True(t, c.SelectAction(c.Catalog[0]))
	assert.True(t, c.SelectAction(c.Catalog[1]))
	c.SetManualExtension(c.Catalog[1].ID, "en", "Lapping required on seat ring.")

	c.Next() // spares
	c.Draft().SparesText = "Seat ring, stem packing"
	c.Next() // result
	c.Draft().ResultText = "Valve restored to service."

	result, err := c.Submit()
	require.NoError(t, err)
	assert.Equal(t, "SR-260831-001", result.ReportNo)

	require.Len(t, svc.created, 1)
	payload := svc.created[0]

	assert.Equal(t, "en", payload.Language)
	assert.Equal(t, "a.tekin", payload.ResponsibleUser)
	assert.Equal(t, models.StatusDraft, payload.Status)

	require.NotNil(t, payload.ArrivalDate)
	assert.Equal(t, arrival, *payload.ArrivalDate)
	require.NotNil(t, payload.ShippingDate)
	assert.Equal(t, shipping, *payload.ShippingDate)

	require.Len(t, payload.Products, 1)
	assert.Equal(t, uint(10), payload.Products[0]["product_id"])
	assert.Equal(t, "control", payload.Products[0]["valve_type"])

	require.Len(t, payload.Blocks.Complaint, 1)
	assert.Equal(t, "Valve fails to seat", payload.Blocks.Complaint[0].Text)
	require.Len(t, payload.Blocks.Problems, 1)

	require.Len(t, payload.Actions, 2)
	assert.Equal(t, 0, payload.Actions[0].OrderIndex)
	assert.Equal(t, 1, payload.Actions[1].OrderIndex)
	assert.Empty(t, payload.Actions[0].ManualExtensionEn)
	assert.Equal(t, "Lapping required on seat ring.", payload.Actions[1].ManualExtensionEn)

	require.Len(t, payload.Spares, 1)
	assert.Equal(t, "Valve restored to service.", payload.ResultNotes)
}
