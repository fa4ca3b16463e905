package routing

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/vango-dev/shellroute/pkg/element"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegisterer(reg), WithNamespace("test"))
	r := newTestRegistry(WithMetrics(m), WithResolver(ResolverFunc(func(name string) (element.Element, bool) {
		if name == "typed" {
			return &aboutPage{}, true
		}
		return nil, false
	})))

	_ = r.RegisterType("about", reflect.TypeFor[aboutPage]())
	_ = r.RegisterRoute("home", FactoryFunc(func() element.Element { return &homePage{} }))
	_ = r.RegisterRoute("bad route", FactoryFunc(func() element.Element { return &homePage{} }))
	_ = r.RegisterType("broken", reflect.TypeFor[notAnElement]())

	_, _ = r.GetOrCreateContent("about")
	_, _ = r.GetOrCreateContent("home")
	_, _ = r.GetOrCreateContent("typed")
	_, _ = r.GetOrCreateContent("missing")
	_, _ = r.GetOrCreateContent("broken")
	_ = r.GetRoute(&homePage{})

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"registrations factory", testutil.ToFloat64(m.registrations.WithLabelValues("factory")), 1},
		{"registrations type", testutil.ToFloat64(m.registrations.WithLabelValues("type")), 2},
		{"invalid", testutil.ToFloat64(m.invalidRegistrations), 1},
		{"resolutions registry", testutil.ToFloat64(m.resolutions.WithLabelValues(sourceRegistry)), 2},
		{"resolutions type", testutil.ToFloat64(m.resolutions.WithLabelValues(sourceType)), 1},
		{"resolutions none", testutil.ToFloat64(m.resolutions.WithLabelValues(sourceNone)), 1},
		{"resolution errors", testutil.ToFloat64(m.resolutionErrors), 1},
		{"generated", testutil.ToFloat64(m.generatedRoutes), 1},
		{"routes", testutil.ToFloat64(m.routes), 3},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	r.UnregisterRoute("home")
	if got := testutil.ToFloat64(m.routes); got != 2 {
		t.Errorf("routes after unregister = %v, want 2", got)
	}
	r.Clear()
	if got := testutil.ToFloat64(m.routes); got != 0 {
		t.Errorf("routes after Clear = %v, want 0", got)
	}

	if n, err := testutil.GatherAndCount(reg, "test_routing_registrations_total"); err != nil || n != 2 {
		t.Errorf("GatherAndCount = %d, %v; want 2 series", n, err)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.recordRegistration("factory", 1)
	m.recordInvalid()
	m.recordResolution(sourceNone)
	m.recordResolutionError()
	m.recordGenerated()
	m.setRoutes(0)
}

func TestRoutesGaugeConcurrent(t *testing.T) {
	m := NewMetrics(WithRegisterer(prometheus.NewRegistry()))
	r := newTestRegistry(WithMetrics(m))
	factory := FactoryFunc(func() element.Element { return &homePage{} })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				name := fmt.Sprintf("page-%d-%d", i, j)
				_ = r.RegisterRoute(name, factory)
				if j%2 == 0 {
					r.UnregisterRoute(name)
				}
			}
		}(i)
	}
	wg.Wait()

	if got, want := testutil.ToFloat64(m.routes), float64(r.Len()); got != want {
		t.Errorf("routes gauge = %v, want %v", got, want)
	}
	if r.Len() != 16*25 {
		t.Errorf("Len() = %d, want %d", r.Len(), 16*25)
	}
}
