// Package archive stores persistable values in their primitive dict form.
//
// A persistable type reduces itself to a map of field name to primitive
// values (strings, numbers, booleans, nested []any / map[string]any) and
// registers a decoder under a type name. The Store keeps (type, dict)
// entries by key and reads or writes them as a YAML document.
//
//	archive.Register("BlockStructure", decode)
//	st := archive.NewStore()
//	_ = st.Put("dft_struct", bs)
//	_ = st.Save("run.yaml")
package archive
