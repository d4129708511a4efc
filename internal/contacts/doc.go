// Package contacts implements the spreadsheet-to-recipient pipeline:
// phone normalization, column type detection, header-to-field mapping,
// and contact extraction.
//
// Everything here is a pure function of its inputs. The contact list is
// always re-derived wholesale from (raw rows, current mapping); there is
// no cache to invalidate and no hidden state to go stale.
package contacts
