// Package wizard drives the step-by-step composition of a service report
// draft. The controller owns one mutable draft for the lifetime of a session
// and talks to the backend only through the Service interface, so the whole
// flow runs against fakes in tests.
package wizard

import (
	"errors"
	"log"
	"time"

	"github.com/yilfev-stack/yeniservisrapor26022026/models"
)

// Step is the wizard position. Navigation is strictly sequential; there is no
// jump operation, so upstream selections (customer, product) are always made
// before the steps that depend on them.
type Step int

const (
	StepGeneral Step = iota
	StepProduct
	StepShipping
	StepComplaint
	StepProblems
	StepActions
	StepSpares
	StepResult
)

var stepLabels = [...]string{
	"general", "product", "shipping", "complaint", "problems", "actions", "spares", "result",
}

func (s Step) String() string {
	if s < StepGeneral || s > StepResult {
		return "unknown"
	}
	return stepLabels[s]
}

// Service is the backend surface the wizard consumes.
type Service interface {
	ListCustomers() ([]models.CustomerOption, error)
	ListProducts() ([]models.ProductOption, error)
	ListActionCatalog(valveType string) ([]models.CatalogEntry, error)
	CreateReport(payload models.ReportPayload) (*models.CreateResult, error)
}

var (
	// ErrNotAtFinalStep is returned when Submit is called before the last step.
	ErrNotAtFinalStep = errors.New("submit is only allowed at the final step")
	// ErrAlreadySubmitted is returned once the session has ended.
	ErrAlreadySubmitted = errors.New("report already submitted")
)

// Draft is the in-progress report owned by one wizard session.
type Draft struct {
	CustomerID uint
	ProductID  uint
	ValveType  string

	ArrivalDate  *time.Time
	ShippingDate *time.Time

	ComplaintText string
	ProblemsText  string
	SparesText    string
	ResultText    string

	Actions []models.ReportAction
}

// Controller is the wizard state machine.
type Controller struct {
	svc Service

	Language        string
	ResponsibleUser string

	step      Step
	submitted bool
	draft     Draft

	// Picker options, loaded on Init. A failed load leaves an empty list; the
	// wizard stays usable without them.
	Customers []models.CustomerOption
	Products  []models.ProductOption
	Catalog   []models.CatalogEntry
}

// New creates a wizard session and loads the picker options.
func New(svc Service, language, responsibleUser string) *Controller {
	c := &Controller{
		svc:             svc,
		Language:        language,
		ResponsibleUser: responsibleUser,
	}
	c.Init()
	return c
}

// Init loads the customer and product lists. Read failures degrade to empty
// option sets; the operator is not interrupted.
func (c *Controller) Init() {
	customers, err := c.svc.ListCustomers()
	if err != nil {
		log.Printf("wizard: customer list unavailable: %v", err)
		customers = nil
	}
	c.Customers = customers

	products, err := c.svc.ListProducts()
	if err != nil {
		log.Printf("wizard: product list unavailable: %v", err)
		products = nil
	}
	c.Products = products
}

// Step returns the current wizard position.
func (c *Controller) Step() Step {
	return c.step
}

// Draft exposes the current draft for rendering.
func (c *Controller) Draft() *Draft {
	return &c.draft
}

// Submitted reports whether the session has ended.
func (c *Controller) Submitted() bool {
	return c.submitted
}

// Next advances one step, clamped at the final step. Entering the actions
// step fetches the catalog filtered by the draft's valve type.
func (c *Controller) Next() {
	if c.submitted || c.step >= StepResult {
		return
	}
	c.step++
	if c.step == StepActions {
		c.RefreshCatalog()
	}
}

// Back retreats one step, clamped at the first step.
func (c *Controller) Back() {
	if c.submitted || c.step <= StepGeneral {
		return
	}
	c.step--
	if c.step == StepActions {
		c.RefreshCatalog()
	}
}

// SelectCustomer records the customer choice made on the general step.
func (c *Controller) SelectCustomer(id uint) {
	c.draft.CustomerID = id
}

// SelectProduct records the product choice and derives the draft's valve type
// from the product when it carries one. A product without a recorded valve
// type leaves the field operator-editable.
func (c *Controller) SelectProduct(id uint) {
	c.draft.ProductID = id
	for _, p := range c.Products {
		if p.ID == id {
			if p.ValveType != "" {
				c.SetValveType(p.ValveType)
			}
			return
		}
	}
}

// SetValveType updates the valve type. While the actions step is active this
// re-fetches the filtered catalog; it is the only field whose mutation
// triggers an external read.
func (c *Controller) SetValveType(valveType string) {
	if c.draft.ValveType == valveType {
		return
	}
	c.draft.ValveType = valveType
	if c.step == StepActions {
		c.RefreshCatalog()
	}
}

// RefreshCatalog re-reads the action catalog for the draft's valve type. The
// result is discarded if the valve type changed while the fetch was in
// flight, so a superseded fetch can never overwrite the list with stale
// entries. Fetch failures degrade to an empty catalog.
func (c *Controller) RefreshCatalog() {
	valveType := c.draft.ValveType
	entries, err := c.svc.ListActionCatalog(valveType)
	if valveType != c.draft.ValveType {
		return
	}
	if err != nil {
		log.Printf("wizard: action catalog unavailable: %v", err)
		entries = nil
	}
	c.Catalog = entries
}

// Save persists the draft at whatever step it is on. The step does not
// change; a failure leaves the draft untouched so the operator can retry.
func (c *Controller) Save() (*models.CreateResult, error) {
	if c.submitted {
		return nil, ErrAlreadySubmitted
	}
	return c.svc.CreateReport(c.buildPayload())
}

// Submit finalizes the session. Only meaningful at the last step; on success
// the controller enters its terminal state and is discarded by the caller.
func (c *Controller) Submit() (*models.CreateResult, error) {
	if c.submitted {
		return nil, ErrAlreadySubmitted
	}
	if c.step != StepResult {
		return nil, ErrNotAtFinalStep
	}
	result, err := c.svc.CreateReport(c.buildPayload())
	if err != nil {
		return nil, err
	}
	c.submitted = true
	return result, nil
}

// buildPayload packages the draft into the create-report contract.
func (c *Controller) buildPayload() models.ReportPayload {
	blocks := models.ReportBlocks{
		Complaint: []models.TextBlock{},
		Problems:  []models.TextBlock{},
	}
	if c.draft.ComplaintText != "" {
		blocks.Complaint = append(blocks.Complaint, models.TextBlock{Text: c.draft.ComplaintText})
	}
	if c.draft.ProblemsText != "" {
		blocks.Problems = append(blocks.Problems, models.TextBlock{Text: c.draft.ProblemsText})
	}

	products := []map[string]interface{}{}
	if c.draft.ProductID != 0 {
		products = append(products, map[string]interface{}{
			"product_id": c.draft.ProductID,
			"valve_type": c.draft.ValveType,
		})
	}

	spares := []models.TextBlock{}
	if c.draft.SparesText != "" {
		spares = append(spares, models.TextBlock{Text: c.draft.SparesText})
	}

	actions := make([]models.ReportAction, len(c.draft.Actions))
	copy(actions, c.draft.Actions)

	return models.ReportPayload{
		Language:        c.Language,
		Status:          models.StatusDraft,
		CustomerID:      c.draft.CustomerID,
		ResponsibleUser: c.ResponsibleUser,
		ArrivalDate:     c.draft.ArrivalDate,
		ShippingDate:    c.draft.ShippingDate,
		Products:        products,
		Blocks:          blocks,
		Actions:         actions,
		Spares:          spares,
		ResultNotes:     c.draft.ResultText,
	}
}
