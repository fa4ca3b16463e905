// Package element defines the element capability the route registry builds
// on: an object that carries attached properties.
//
// An attached property is a value associated with an element instance by an
// outside owner rather than declared on the element's own type. The routing
// package uses one to remember which route produced a page.
//
// # Elements
//
// Any type that embeds Base is an Element:
//
//	type SettingsPage struct {
//	    element.Base
//	    Title string
//	}
//
// # Attached Properties
//
// Properties are declared once, usually as package-level values, and read or
// written per element:
//
//	var Theme = element.NewAttached("Theme", "Styles", func(element.Element) string {
//	    return "light"
//	})
//
//	page := &SettingsPage{}
//	Theme.Get(page)         // "light", created on first read and stored
//	Theme.Set(page, "dark")
//	Theme.IsSet(page)       // true
//
// A default creator runs at most once per element. Its result is stored as
// if it had been set, so later reads observe the same value.
package element
