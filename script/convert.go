package script

import (
	"image/color"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/linedrawer/common"
	"github.com/milk9111/linedrawer/config"
	"github.com/milk9111/linedrawer/debugdraw"
)

func arrayValues(obj tengo.Object) ([]tengo.Object, bool) {
	switch v := obj.(type) {
	case *tengo.Array:
		return v.Value, true
	case *tengo.ImmutableArray:
		return v.Value, true
	default:
		return nil, false
	}
}

func toFloat32(fn, pos string, obj tengo.Object) (float32, error) {
	f, ok := tengo.ToFloat64(obj)
	if !ok {
		return 0, tengo.ErrInvalidArgumentType{Name: fn + " " + pos, Expected: "float(compatible)", Found: obj.TypeName()}
	}
	return float32(f), nil
}

func toVec3(fn, pos string, obj tengo.Object) (debugdraw.Vec3, error) {
	values, ok := arrayValues(obj)
	if !ok || len(values) != 3 {
		return debugdraw.Vec3{}, tengo.ErrInvalidArgumentType{Name: fn + " " + pos, Expected: "array[3]", Found: obj.TypeName()}
	}
	var v debugdraw.Vec3
	for i, item := range values {
		f, err := toFloat32(fn, pos, item)
		if err != nil {
			return debugdraw.Vec3{}, err
		}
		v[i] = f
	}
	return v, nil
}

func toColor(fn, pos string, obj tengo.Object) (color.RGBA, error) {
	if s, ok := obj.(*tengo.String); ok {
		return config.ParseColor(s.Value)
	}

	values, ok := arrayValues(obj)
	if !ok || len(values) < 3 || len(values) > 4 {
		return color.RGBA{}, tengo.ErrInvalidArgumentType{Name: fn + " " + pos, Expected: "string or array[3|4]", Found: obj.TypeName()}
	}
	channels := [4]uint8{0, 0, 0, 255}
	for i, item := range values {
		n, ok := tengo.ToInt(item)
		if !ok {
			return color.RGBA{}, tengo.ErrInvalidArgumentType{Name: fn + " " + pos, Expected: "int channel", Found: item.TypeName()}
		}
		channels[i] = uint8(min(max(n, 0), 255))
	}
	return common.Premultiply(color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}), nil
}

func optionalTime(fn string, args []tengo.Object, idx int) (float32, error) {
	if len(args) <= idx {
		return 0, nil
	}
	return toFloat32(fn, "last", args[idx])
}
