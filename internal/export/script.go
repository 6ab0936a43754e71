package export

import (
	"fmt"
	"strings"
)

// Script renders the companion UnrealScript class: the #exec import
// directives UCC runs at compile time, plus a minimal Decoration subclass.
// Paths are package-relative and use backslashes, as UCC expects.
func Script(meshName string, frameCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "#exec MESH IMPORT MESH=%[1]s ANIVFILE=Models\\%[1]s_a.3d DATAFILE=Models\\%[1]s_d.3d X=0 Y=0 Z=0 unmirror=1\n", meshName)
	fmt.Fprintf(&b, "#exec MESH ORIGIN MESH=%s X=0 Y=0 Z=0 ROLL=0\n\n", meshName)

	fmt.Fprintf(&b, "#exec MESH SEQUENCE MESH=%s SEQ=All     STARTFRAME=0  NUMFRAMES=%d\n", meshName, frameCount)
	fmt.Fprintf(&b, "#exec MESH SEQUENCE MESH=%s SEQ=Still  STARTFRAME=0  NUMFRAMES=1\n\n", meshName)

	fmt.Fprintf(&b, "#exec TEXTURE IMPORT NAME=J%[1]s FILE=Skins\\%[1]sskin.bmp GROUP=\"Skins\"\n\n", meshName)

	fmt.Fprintf(&b, "#exec MESHMAP SCALE MESHMAP=%s X=1 Y=1 Z=1\n", meshName)
	fmt.Fprintf(&b, "#exec MESHMAP SETTEXTURE MESHMAP=%[1]s NUM=1 TEXTURE=J%[1]s\n\n", meshName)

	fmt.Fprintf(&b, "class %s extends Decoration;\n", meshName)

	return b.String()
}
