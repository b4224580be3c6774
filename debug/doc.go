// Package debug provides debug logging gated by environment variables.
//
//	HIPPO_DEBUG_PARSE      parser summaries
//	HIPPO_DEBUG_ENCODE     encoder summaries
//	HIPPO_DEBUG_TRANSFORM  transform pipeline steps
//	HIPPO_DEBUG_FILE       file reads and writes
//	HIPPO_DEBUG_QUERY      query and match evaluation
package debug
