package resolve

import (
	"fmt"

	"settings-generator/internal/naming"
)

// enumContext handles enum signatures. The referenced definition must
// exist; a dangling reference aborts the pass. The mapping's type is
// the Go name derived from the enum id, and the auxiliary carries the
// definition so the generator can emit the type, its constants, and
// the nick conversions next to the accessors.
func (r *Registry) enumContext(enumName string) (Context, error) {
	def, ok := r.enums[enumName]
	if !ok {
		return Context{}, fmt.Errorf("%w: expected an enum definition for %q", ErrMissingEnum, enumName)
	}

	typeName := naming.EnumTypeName(enumName)

	ctx := NewContext(typeName)
	ctx.Enum = &EnumAux{TypeName: typeName, Enum: def}

	return ctx, nil
}
