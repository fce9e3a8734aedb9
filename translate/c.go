package translate

import (
	"bytes"
	"fmt"
)

func translateC(buf *bytes.Buffer, src []byte, size int) error {
	if err := balance(src); err != nil {
		return err
	}

	fmt.Fprintf(buf, `/* THIS FILE WAS AUTOMATICALLY GENERATED */


#include <stdint.h>
#include <stdio.h>
#include <stdlib.h>

int main() {
	uint8_t* array = malloc(%d * sizeof(uint8_t));

	if (array == NULL) {
		fprintf(stderr, "Unable to allocate the initial array!");
		return EXIT_FAILURE;
	}

	uint8_t* ptr = array;

`, size)

	first := true
	lastIsNewLine := false
	depth := 1
	indent := func(n int) {
		for range n {
			buf.WriteByte('\t')
		}
	}

	for _, c := range src {
		switch c {

		case '[':
			if !first {
				buf.WriteByte('\n')
			}
			indent(depth)
			depth++
			buf.WriteString("while (*ptr) {\n")

		case ']':
			lastIsNewLine = true
			depth--
			indent(depth)
			buf.WriteString("}\n\n")

		case '>', '<', '+', '-', '.', ',':
			lastIsNewLine = false
			indent(depth)
			buf.WriteString(cStatements[c])
			buf.WriteByte('\n')

		}
		first = false
	}

	if !lastIsNewLine {
		buf.WriteByte('\n')
	}

	buf.WriteString("\tfree(array);\n\n\treturn EXIT_SUCCESS;\n}\n")
	return nil
}

var cStatements = map[byte]string{
	'>': "++ptr;",
	'<': "--ptr;",
	'+': "++(*ptr);",
	'-': "--(*ptr);",
	'.': "putchar(*ptr);",
	',': "(*ptr) = getchar();",
}
