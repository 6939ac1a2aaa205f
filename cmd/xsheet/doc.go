// Command xsheet exports animation projects to exposure sheet documents
// and deduplicated cell images.
package main
