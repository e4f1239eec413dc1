// Package instance loads distance matrices from disk.
//
// Two formats are recognized:
//
//   - TSPLIB (TSP and ATSP): EDGE_WEIGHT_TYPE EXPLICIT with the FULL_MATRIX,
//     UPPER_ROW, LOWER_ROW, UPPER_DIAG_ROW and LOWER_DIAG_ROW layouts, and the
//     coordinate types EUC_2D, CEIL_2D, MAN_2D, MAX_2D, ATT and GEO.
//   - Plain: the dimension N followed by N×N whitespace-separated weights.
//
// A file whose first token is an integer is read as plain. The diagonal is
// always forced to zero.
package instance
