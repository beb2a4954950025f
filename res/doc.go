// Package res reads and writes .res archive containers.
//
// An archive is a 16-byte header, the entry data region, a hash table of
// 22-byte slots and a buffer of codepage 1251 entry names:
//
//	+--------+---------------------------+-------------+--------------+
//	| header | entry data (16B aligned)  | hash slots  | names buffer |
//	+--------+---------------------------+-------------+--------------+
//
// Offsets in the header and slots are relative to the header start, so an
// archive can be embedded at any position of a larger stream.
//
// Writing is incremental: AddEntry starts a new entry at the current stream
// position and the caller writes its bytes through the Writer (or directly to
// the stream). Close finalizes the last entry, appends the hash table and the
// names and backpatches the header. An archive whose writer was never closed is
// unreadable, so Close must run on every exit path:
//
//	w, err := res.NewWriter(f)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.AddEntry(`textures\grass.mmp`, modTime); err != nil {
//	    return err
//	}
//	_, err = w.Write(data)
//
// Reading trusts the stored table as a directory: ListEntries never recomputes
// name hashes. Names compare case-insensitively for ASCII letters only.
package res
