// Package hippofile binds a document to a file on a billy filesystem.
//
// Files are read whole: Open decodes the stored bytes with the configured
// transform pipeline and parses them, Save writes plain text and Encrypt
// writes through the pipeline.
package hippofile
