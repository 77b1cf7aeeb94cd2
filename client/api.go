package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yilfev-stack/yeniservisrapor26022026/models"

	"github.com/go-resty/resty/v2"
)

// ErrExternal is the generic failure returned for any transport or server
// error. Callers never branch on status codes, only on this sentinel.
var ErrExternal = errors.New("external operation failed")

// envelope is the backend's standard response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// API is the resty-backed implementation of the backend contract consumed by
// the report wizard and the taxonomy resolver.
type API struct {
	http *resty.Client
}

// New builds an API client against the given base URL.
func New(baseURL string) *API {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &API{http: c}
}

// SetToken attaches the JWT used on authenticated routes.
func (a *API) SetToken(token string) {
	a.http.SetAuthToken(token)
}

// get issues a GET and decodes the envelope's data field into out.
func (a *API) get(path string, query map[string]string, out interface{}) error {
	var env envelope
	resp, err := a.http.R().SetQueryParams(query).SetResult(&env).Get(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExternal, err)
	}
	if resp.IsError() || !env.Status {
		return fmt.Errorf("%w: %s", ErrExternal, env.Message)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrExternal, err)
	}
	return nil
}

// send issues a POST/PUT/DELETE with an optional body and decodes the data
// field into out.
func (a *API) send(method, path string, body, out interface{}) error {
	var env envelope
	req := a.http.R().SetResult(&env).SetError(&env)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExternal, err)
	}
	if resp.IsError() || !env.Status {
		return fmt.Errorf("%w: %s", ErrExternal, env.Message)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrExternal, err)
	}
	return nil
}

func (a *API) ListCustomers() ([]models.CustomerOption, error) {
	var out []models.CustomerOption
	if err := a.get("/customers/options", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) ListProducts() ([]models.ProductOption, error) {
	var out []models.ProductOption
	if err := a.get("/products/options", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActionCatalog fetches active library entries. An empty valveType returns
// the whole catalog; otherwise entries scoped to the type plus the unscoped
// ones.
func (a *API) ListActionCatalog(valveType string) ([]models.CatalogEntry, error) {
	query := map[string]string{}
	if valveType != "" {
		query["valve_type"] = valveType
	}
	var out []models.CatalogEntry
	if err := a.get("/action-library/catalog", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) CreateReport(payload models.ReportPayload) (*models.CreateResult, error) {
	var out models.CreateResult
	if err := a.send(resty.MethodPost, "/reports", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) GetTaxonomy() (map[string][]string, error) {
	var out map[string][]string
	if err := a.get("/taxonomy", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) PostTaxonomyValue(field, value string) error {
	body := map[string]string{"field": field, "value": value}
	return a.send(resty.MethodPost, "/taxonomy", body, nil)
}

func (a *API) GetProduct(id uint) (*models.ProductPayload, error) {
	var out models.ProductPayload
	if err := a.get(fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) CreateProduct(payload models.ProductPayload) (*models.CreateResult, error) {
	var out models.CreateResult
	if err := a.send(resty.MethodPost, "/products", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) UpdateProduct(id uint, payload models.ProductPayload) error {
	return a.send(resty.MethodPut, fmt.Sprintf("/products/%d", id), payload, nil)
}

func (a *API) DeleteProduct(id uint) error {
	return a.send(resty.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}
