// Package style generates scoped CSS for components.
//
// Components may contribute three bundles of rules:
//
//   - global rules, emitted as written
//   - local rules, scoped to every instance of the component type: each
//     class or id selector receives the type's class prefix
//   - instance rules, scoped to one component instance with its full prefix
//
// Bundles are normalized with Normalize, which accepts Rule values, raw CSS
// strings and map-shaped rule objects using a compact selector notation:
//
//	map[string]any{
//	    "item$c":       map[string]any{"fontSize$px": 14},  // .item { font-size: 14px; }
//	    "title$i$hover": map[string]any{"color": "red"},    // #title:hover { color: red; }
//	    "$media": map[string]any{
//	        ":rule": "(max-width: 600px)",
//	        "item$c": map[string]any{"display": "none"},
//	    },
//	}
//
// A Registry collects the generated text per component type and can mirror
// it into a <style> element of a render target.
package style
