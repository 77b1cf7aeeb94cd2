package taxonomy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaxonomyService struct {
	remote    map[string][]string
	getErr    error
	postErr   error
	published [][2]string
}

func (f *fakeTaxonomyService) GetTaxonomy() (map[string][]string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.remote, nil
}

func (f *fakeTaxonomyService) PostTaxonomyValue(field, value string) error {
	if f.postErr != nil {
		return f.postErr
	}
	f.published = append(f.published, [2]string{field, value})
	return nil
}

func TestNewResolverStartsWithSeeds(t *testing.T) {
	r := NewResolver(&fakeTaxonomyService{})

	assert.Equal(t, []string{"control", "on_off", "safety", "butterfly", "ball", "globe"}, r.Values(FieldValveType))
	assert.Equal(t, []string{"pneumatic", "electric", "hydraulic", "manual"}, r.Values(FieldActuatorType))
	assert.Empty(t, r.Values(FieldManufacturer))
}

func TestSeedSetsNotSharedBetweenResolvers(t *testing.T) {
	a := NewResolver(&fakeTaxonomyService{})
	b := NewResolver(&fakeTaxonomyService{})

	require.NoError(t, a.Publish(FieldValveType, "plug"))
	assert.NotContains(t, b.Values(FieldValveType), "plug")
	assert.NotContains(t, SeedSets[FieldValveType], "plug")
}

func TestLoadUnionsRemoteOverSeeds(t *testing.T) {
	svc := &fakeTaxonomyService{remote: map[string][]string{
		FieldValveType:    {"control", "plug"},
		FieldManufacturer: {"Samson", "Fisher"},
	}}
	r := NewResolver(svc)
	r.Load()

	assert.Contains(t, r.Values(FieldValveType), "plug")
	assert.Contains(t, r.Values(FieldValveType), "butterfly", "seed values survive the merge")
	assert.Len(t, r.Values(FieldValveType), 7, "remote duplicate of a seed not added twice")
	assert.Equal(t, []string{"Samson", "Fisher"}, r.Values(FieldManufacturer))
}

func TestLoadFailureKeepsSeeds(t *testing.T) {
	svc := &fakeTaxonomyService{getErr: errors.New("backend down")}
	r := NewResolver(svc)
	r.Load()

	assert.Equal(t, []string{"control", "on_off", "safety", "butterfly", "ball", "globe"}, r.Values(FieldValveType))
}

func TestPublishTrimsAndIgnoresEmpty(t *testing.T) {
	svc := &fakeTaxonomyService{}
	r := NewResolver(svc)

	require.NoError(t, r.Publish(FieldManufacturer, ""))
	require.NoError(t, r.Publish(FieldManufacturer, "   "))
	assert.Empty(t, svc.published)
	assert.Empty(t, r.Values(FieldManufacturer))

	require.NoError(t, r.Publish(FieldManufacturer, "  Samson  "))
	assert.Equal(t, []string{"Samson"}, r.Values(FieldManufacturer))
	require.Len(t, svc.published, 1)
	assert.Equal(t, [2]string{FieldManufacturer, "Samson"}, svc.published[0])
}

func TestPublishIdempotent(t *testing.T) {
	svc := &fakeTaxonomyService{}
	r := NewResolver(svc)

	require.NoError(t, r.Publish(FieldManufacturer, "Samson"))
	require.NoError(t, r.Publish(FieldManufacturer, "Samson"))
	require.NoError(t, r.Publish(FieldManufacturer, " Samson "))

	assert.Equal(t, []string{"Samson"}, r.Values(FieldManufacturer))
	assert.Len(t, svc.published, 1, "backend hit once per distinct value")
}

func TestPublishKnownSeedValueIsNoOp(t *testing.T) {
	svc := &fakeTaxonomyService{}
	r := NewResolver(svc)

	require.NoError(t, r.Publish(FieldValveType, "control"))
	assert.Empty(t, svc.published)
}

func TestPublishKeepsValueLocallyOnBackendFailure(t *testing.T) {
	svc := &fakeTaxonomyService{postErr: errors.New("backend down")}
	r := NewResolver(svc)

	err := r.Publish(FieldManufacturer, "Samson")
	require.Error(t, err)
	assert.Contains(t, r.Values(FieldManufacturer), "Samson", "typed value not lost")
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Limit Switch ":   "limit_switch",
		"limit_switch":    "limit_switch",
		"  Air   Filter ": "air_filter",
		"Solenoid":        "solenoid",
		"":                "",
		"   ":             "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
