// Package numpy implements the NumPy docstring style.
//
// Sections start with a recognized title underlined by a run of one
// repeated character at least as long as the title:
//
//	Parameters
//	----------
//	path : str
//	    Where to write.
//	mode : int, optional
//	    File mode.
//
//	Returns
//	-------
//	bool
//	    Whether the file changed.
//
// A section ends where the next header starts. Field headers are
// "name : type"; in Returns, Yields, Raises and Warns sections a header
// without a colon names the type.
package numpy
