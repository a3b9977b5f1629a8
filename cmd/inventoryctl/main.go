// inventoryctl opera el inventario desde la terminal sobre el mismo almacenamiento que la API:
// siembra datos, registra movimientos y exporta reportes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
