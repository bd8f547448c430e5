package locale

import (
	"fmt"
	"io"
)

// Report writes the resolved locale name followed by three byte-wise
// comparisons over fixed names. The comparison results stay the same under
// every locale, which is the point of printing them next to the name.
func Report(w io.Writer) {
	fmt.Fprintf(w, "setlocale = %s\n", Resolve())
	fmt.Fprintf(w, "strcmp(Android, .android) = %d\n", Compare("Android", ".android"))
	fmt.Fprintf(w, "strcmp(Android, android-studio) = %d\n", Compare("Android", "android-studio"))
	fmt.Fprintf(w, "strcmp(.android, android-studio) = %d\n", Compare(".android", "android-studio"))
}
