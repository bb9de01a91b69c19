/*
File Name:  Node ID.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package core

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec"
	"lukechampine.com/blake3"
)

// The node's identity is an ECDSA (secp256k1) key pair. The node address is
// the blake3 hash of the public key compressed form, hex encoded.

func (backend *Backend) initNodeID() (status int, err error) {
	// load existing key from config, if available
	if len(backend.Config.PrivateKey) > 0 {
		configPK, err := hex.DecodeString(backend.Config.PrivateKey)
		if err != nil {
			return ExitPrivateKeyCorrupt, err
		}

		backend.peerPrivateKey, backend.peerPublicKey = btcec.PrivKeyFromBytes(btcec.S256(), configPK)
		backend.nodeAddress = publicKey2Address(backend.peerPublicKey)
		return ExitSuccess, nil
	}

	// if the key is empty, create a new public-private key pair
	if backend.peerPrivateKey, backend.peerPublicKey, err = Secp256k1NewPrivateKey(); err != nil {
		return ExitPrivateKeyCreate, err
	}
	backend.nodeAddress = publicKey2Address(backend.peerPublicKey)

	// save the newly generated private key into the config
	backend.Config.PrivateKey = hex.EncodeToString(backend.peerPrivateKey.Serialize())
	backend.saveConfig()

	return ExitSuccess, nil
}

// Secp256k1NewPrivateKey creates a new public-private key pair
func Secp256k1NewPrivateKey() (privateKey *btcec.PrivateKey, publicKey *btcec.PublicKey, err error) {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, nil, err
	}

	return key, (*btcec.PublicKey)(&key.PublicKey), nil
}

// ExportPrivateKey returns the node's public and private key
func (backend *Backend) ExportPrivateKey() (privateKey *btcec.PrivateKey, publicKey *btcec.PublicKey) {
	return backend.peerPrivateKey, backend.peerPublicKey
}

// SelfAddress returns this node's own address on the vicinity network.
func (backend *Backend) SelfAddress() Address {
	return backend.nodeAddress
}

// hashData abstracts the hash function.
func hashData(data []byte) (hash []byte) {
	hash32 := blake3.Sum256(data)
	return hash32[:]
}

// publicKey2Address translates the public key into the node address.
func publicKey2Address(publicKey *btcec.PublicKey) Address {
	return Address(hex.EncodeToString(hashData(publicKey.SerializeCompressed())))
}
