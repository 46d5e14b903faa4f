package testsupport

import "testing/fstest"

// ContentFS builds an in-memory content tree from slash separated paths.
func ContentFS(files map[string]string) fstest.MapFS {
	out := make(fstest.MapFS, len(files))
	for name, body := range files {
		out[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return out
}
