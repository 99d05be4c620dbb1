package fixed

//go:generate go run ../cmd/fixedgen gen --config ../fixedgen.yaml
