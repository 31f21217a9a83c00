// Package instruction loads annotation instructions and interprets their
// typed prefixes.
//
// An instruction file is a JSON array of objects:
//
//	[
//	  {"text": "key: net revenue increased", "comment": "Key: growth", "page": 3},
//	  {"text": "learning rate of 3e-4", "action": "underline", "comment": "parameter: lr"}
//	]
//
// Only "text" is required. "page" is 1-based; when it is absent or null the
// phrase is searched on every page. Text and comments may start with a typed
// prefix ("key:", "detail:" or "parameter:") that selects the highlight colour.
package instruction
