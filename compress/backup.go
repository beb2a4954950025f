package compress

import (
	"fmt"

	"github.com/arloliu/eikit/codec"
	"github.com/arloliu/eikit/errs"
	"github.com/arloliu/eikit/format"
)

const (
	// BackupMagic starts every backup frame ("EIBK" little-endian).
	BackupMagic uint32 = 0x4B424945
	// BackupHeaderSize is the size of the frame header.
	BackupHeaderSize = 13
	// MaxBackupSize bounds the decoded size a backup frame may claim.
	MaxBackupSize = 1 << 30
)

type backupHeader struct {
	Magic uint32
	Type  format.CompressionType
	Size  uint64
}

// EncodeBackup compresses data with compressionType and wraps it in a backup
// frame.
func EncodeBackup(compressionType format.CompressionType, data []byte) ([]byte, error) {
	c, err := CreateCodec(compressionType, "backup")
	if err != nil {
		return nil, err
	}

	payload, err := c.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compress backup: %w", err)
	}

	hdr := backupHeader{Magic: BackupMagic, Type: compressionType, Size: uint64(len(data))}
	frame, err := codec.AppendRecord(make([]byte, 0, BackupHeaderSize+len(payload)), &hdr)
	if err != nil {
		return nil, err
	}

	return append(frame, payload...), nil
}

// DecodeBackup restores the data of a backup frame and reports the algorithm
// it was compressed with.
func DecodeBackup(frame []byte) ([]byte, format.CompressionType, error) {
	var hdr backupHeader
	n, err := codec.Unmarshal(frame, &hdr)
	if err != nil {
		return nil, 0, err
	}
	if hdr.Magic != BackupMagic {
		return nil, 0, fmt.Errorf("backup magic 0x%08X: %w", hdr.Magic, errs.ErrInvalidSignature)
	}

	c, err := CreateCodec(hdr.Type, "backup")
	if err != nil {
		return nil, 0, fmt.Errorf("backup codec %d: %w", hdr.Type, errs.ErrCorruptData)
	}
	if hdr.Size > MaxBackupSize {
		return nil, 0, fmt.Errorf("backup claims %d bytes: %w", hdr.Size, errs.ErrSizeOverrun)
	}
	payload := frame[n:]

	var data []byte
	if hdr.Size == 0 && len(payload) == 0 {
		data = []byte{}
	} else {
		data, err = c.DecompressSize(payload, int(hdr.Size))
	}
	if err != nil {
		return nil, 0, fmt.Errorf("decompress %s backup: %w: %w", hdr.Type, errs.ErrCorruptData, err)
	}
	if uint64(len(data)) != hdr.Size {
		return nil, 0, fmt.Errorf("backup decoded to %d bytes, header says %d: %w", len(data), hdr.Size, errs.ErrSizeMismatch)
	}

	return data, hdr.Type, nil
}
