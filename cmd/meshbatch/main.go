// Command meshbatch converts a directory tree of 3D asset files (glb, obj,
// fbx) into USD scenes by driving an external converter once per file, with
// an optional range-spec filter over the numbered top-level subdirectories.
package main

func main() {
	Execute()
}
