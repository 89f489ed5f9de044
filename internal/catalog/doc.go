// Package catalog parses the tab-delimited bug pattern catalog into
// structured records. Parsing is side-effect free; rendering and file output
// live in the docgen package.
package catalog
