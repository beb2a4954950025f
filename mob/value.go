package mob

import (
	"fmt"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/endian"
	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/format"
)

// Plot is a 3D position.
type Plot struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Quaternion is a rotation, stored in w, x, y, z order.
type Quaternion struct {
	W float32 `json:"w"`
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// check fails unless n resolves to typ.
func (n Node) check(typ format.SectionType) error {
	if t := n.Type(); t != typ {
		return fmt.Errorf("%s is %s, not %s: %w", n.ID(), t, typ, errs.ErrTypeMismatch)
	}

	return nil
}

// leaf returns the payload of a leaf of type typ, checking its fixed size.
func (n Node) leaf(typ format.SectionType) ([]byte, error) {
	if err := n.check(typ); err != nil {
		return nil, err
	}

	data := n.raw().data
	if size := typ.FixedSize(); size > 0 && len(data) != size {
		return nil, fmt.Errorf("%s payload of %d bytes, want %d: %w", n.ID(), len(data), size, errs.ErrSizeMismatch)
	}

	return data, nil
}

func (n Node) setLeaf(typ format.SectionType, data []byte) error {
	if err := n.check(typ); err != nil {
		return err
	}
	n.raw().data = data

	return nil
}

// Data returns the raw payload of a leaf section. Records fail with
// errs.ErrTypeMismatch.
func (n Node) Data() ([]byte, error) {
	if n.Type() == format.SectionRecord {
		return nil, fmt.Errorf("raw data of record %s: %w", n.ID(), errs.ErrTypeMismatch)
	}

	return n.raw().data, nil
}

// SetData replaces the raw payload of a leaf section. data is copied.
func (n Node) SetData(data []byte) error {
	if n.Type() == format.SectionRecord {
		return fmt.Errorf("raw data of record %s: %w", n.ID(), errs.ErrTypeMismatch)
	}
	n.raw().data = clone(data)

	return nil
}

// AsString decodes a String section. The text is returned as stored,
// including any trailing NUL; see TrimNUL.
func (n Node) AsString() (string, error) {
	data, err := n.leaf(format.SectionString)
	if err != nil {
		return "", err
	}

	return codec.Decode(data), nil
}

// SetString stores s in a String section. No terminator is added.
func (n Node) SetString(s string) error {
	if err := n.check(format.SectionString); err != nil {
		return err
	}
	data, err := codec.Encode(s)
	if err != nil {
		return err
	}

	return n.setLeaf(format.SectionString, data)
}

// AsEncryptedString decrypts a StringEncrypted section.
func (n Node) AsEncryptedString() (string, error) {
	data, err := n.leaf(format.SectionStringEncrypted)
	if err != nil {
		return "", err
	}

	return DecryptString(data)
}

// SetEncryptedString encrypts s into a StringEncrypted section, keeping the
// section's current seed.
func (n Node) SetEncryptedString(s string) error {
	if err := n.check(format.SectionStringEncrypted); err != nil {
		return err
	}
	data, err := EncryptString(s, Seed(n.raw().data))
	if err != nil {
		return err
	}

	return n.setLeaf(format.SectionStringEncrypted, data)
}

// AsByte decodes a Byte section.
func (n Node) AsByte() (byte, error) {
	data, err := n.leaf(format.SectionByte)
	if err != nil {
		return 0, err
	}

	return data[0], nil
}

// SetByte stores v in a Byte section.
func (n Node) SetByte(v byte) error {
	return n.setLeaf(format.SectionByte, []byte{v})
}

// AsDword decodes a Dword section.
func (n Node) AsDword() (uint32, error) {
	data, err := n.leaf(format.SectionDword)
	if err != nil {
		return 0, err
	}

	return engine.Uint32(data), nil
}

// SetDword stores v in a Dword section.
func (n Node) SetDword(v uint32) error {
	return n.setLeaf(format.SectionDword, engine.AppendUint32(nil, v))
}

// AsFloat decodes a Float section.
func (n Node) AsFloat() (float32, error) {
	data, err := n.leaf(format.SectionFloat)
	if err != nil {
		return 0, err
	}

	return endian.Float32(engine, data), nil
}

// SetFloat stores v in a Float section.
func (n Node) SetFloat(v float32) error {
	return n.setLeaf(format.SectionFloat, endian.AppendFloat32(engine, nil, v))
}

// AsPlot decodes a Plot section.
func (n Node) AsPlot() (Plot, error) {
	var p Plot
	data, err := n.leaf(format.SectionPlot)
	if err != nil {
		return p, err
	}
	_, err = codec.Unmarshal(data, &p)

	return p, err
}

// SetPlot stores p in a Plot section.
func (n Node) SetPlot(p Plot) error {
	if err := n.check(format.SectionPlot); err != nil {
		return err
	}
	data, err := codec.Marshal(&p)
	if err != nil {
		return err
	}

	return n.setLeaf(format.SectionPlot, data)
}

// AsQuaternion decodes a Quaternion section.
func (n Node) AsQuaternion() (Quaternion, error) {
	var q Quaternion
	data, err := n.leaf(format.SectionQuaternion)
	if err != nil {
		return q, err
	}
	_, err = codec.Unmarshal(data, &q)

	return q, err
}

// SetQuaternion stores q in a Quaternion section.
func (n Node) SetQuaternion(q Quaternion) error {
	if err := n.check(format.SectionQuaternion); err != nil {
		return err
	}
	data, err := codec.Marshal(&q)
	if err != nil {
		return err
	}

	return n.setLeaf(format.SectionQuaternion, data)
}
