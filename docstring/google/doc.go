// Package google implements the Google docstring style.
//
// Sections start with a recognized title followed by a colon, alone on its
// line, with a more indented body:
//
//	Args:
//	    path (str): Where to write.
//	    mode (int, optional): File mode.
//
//	Returns:
//	    bool: Whether the file changed.
//
// A section ends at the first non-blank line indented no deeper than its
// header. Returns and Yields bodies form a single field whose first line
// may start with "type:".
package google
